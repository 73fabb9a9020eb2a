package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// maxFormBytes caps the size of a form body.
const maxFormBytes = 1 << 20

var errBadID = errors.New("malformed id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

// seeOther redirects after a successful POST.
func seeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// parseForm reads an urlencoded body of at most maxFormBytes. It writes the
// error response itself and reports whether the handler should go on.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid form body")
		return false
	}
	return true
}

// pathID parses a uuid path parameter. A malformed id is indistinguishable
// from a missing record.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, errBadID
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

type topicView struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	DateAdded time.Time `json:"date_added"`
}

func toTopicView(t *domain.Topic) *topicView {
	if t == nil {
		return nil
	}
	return &topicView{ID: t.ID, Text: t.Text, DateAdded: t.DateAdded}
}

type entryView struct {
	ID        uuid.UUID `json:"id"`
	TopicID   uuid.UUID `json:"topic_id"`
	Text      string    `json:"text"`
	Preview   string    `json:"preview"`
	DateAdded time.Time `json:"date_added"`
}

func toEntryView(e *domain.Entry) *entryView {
	if e == nil {
		return nil
	}
	return &entryView{ID: e.ID, TopicID: e.TopicID, Text: e.Text, Preview: e.Preview(), DateAdded: e.DateAdded}
}

// formView is what a page template would receive to render a form.
type formView struct {
	Form   string      `json:"form"`
	Method string      `json:"method"`
	Action string      `json:"action"`
	Fields []fieldView `json:"fields"`
	Errors []string    `json:"errors,omitempty"`
	Topic  *topicView  `json:"topic,omitempty"`
	Entry  *entryView  `json:"entry,omitempty"`
}

type fieldView struct {
	Name   string            `json:"name"`
	Label  string            `json:"label"`
	Widget string            `json:"widget"`
	Attrs  map[string]string `json:"attrs,omitempty"`
	Value  string            `json:"value"`
	Errors []string          `json:"errors,omitempty"`
}

func newForm(name, action string, fields ...fieldView) *formView {
	return &formView{Form: name, Method: http.MethodPost, Action: action, Fields: fields}
}

// withErrors attaches validation errors to their fields. Errors for fields
// the form does not show become form-level errors.
func (f *formView) withErrors(ve *domain.ValidationError) *formView {
	shown := make(map[string]int, len(f.Fields))
	for i, fld := range f.Fields {
		shown[fld.Name] = i
	}
	for _, fe := range ve.Errors {
		if i, ok := shown[fe.Field]; ok {
			f.Fields[i].Errors = append(f.Fields[i].Errors, fe.Message)
			continue
		}
		f.Errors = append(f.Errors, fe.Message)
	}
	return f
}

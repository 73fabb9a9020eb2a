package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
	entrysvc "github.com/heartmarshall/learning-log/internal/service/entry"
	topicsvc "github.com/heartmarshall/learning-log/internal/service/topic"
	"github.com/heartmarshall/learning-log/pkg/ctxutil"
)

type topicService interface {
	ListTopics(ctx context.Context, userID uuid.UUID) ([]domain.Topic, error)
	GetTopic(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	GetTopicDetail(ctx context.Context, userID, topicID uuid.UUID) (*topicsvc.Detail, error)
	CreateTopic(ctx context.Context, userID uuid.UUID, input topicsvc.CreateTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, userID uuid.UUID, input topicsvc.UpdateTopicInput) (*domain.Topic, error)
}

type entryService interface {
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*entrysvc.Detail, error)
	CreateEntry(ctx context.Context, userID uuid.UUID, input entrysvc.CreateEntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, userID uuid.UUID, input entrysvc.UpdateEntryInput) (*entrysvc.Detail, error)
}

// JournalHandler serves the topic and entry pages. Every method except Home
// receives the session user from middleware.SessionGuard.
type JournalHandler struct {
	topics  topicService
	entries entryService
	log     *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(topics topicService, entries entryService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{topics: topics, entries: entries, log: logger.With("handler", "journal")}
}

func topicForm(action, text string) *formView {
	return newForm("topic", action, fieldView{
		Name:   "text",
		Widget: "text",
		Attrs:  map[string]string{"maxlength": strconv.Itoa(topicsvc.TextMaxLen)},
		Value:  text,
	})
}

func entryForm(action, text string) *formView {
	return newForm("entry", action, fieldView{
		Name:   "text",
		Widget: "textarea",
		Attrs:  map[string]string{"cols": "80"},
		Value:  text,
	})
}

// Home handles GET /.
func (h *JournalHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"title":       "Learning Log",
		"description": "Learning Log helps you keep track of your learning, for any topic you're learning about.",
	})
}

// ListTopics handles GET /topics.
func (h *JournalHandler) ListTopics(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topics, err := h.topics.ListTopics(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views := make([]topicView, len(topics))
	for i := range topics {
		views[i] = *toTopicView(&topics[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": views})
}

// TopicDetail handles GET /topics/{topic_id}.
func (h *JournalHandler) TopicDetail(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topicID, err := pathID(r, "topic_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	detail, err := h.topics.GetTopicDetail(r.Context(), userID, topicID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entries := make([]entryView, len(detail.Entries))
	for i := range detail.Entries {
		entries[i] = *toEntryView(&detail.Entries[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topic":   toTopicView(detail.Topic),
		"entries": entries,
	})
}

// NewTopicForm handles GET /topics/new.
func (h *JournalHandler) NewTopicForm(w http.ResponseWriter, r *http.Request, _ uuid.UUID) {
	writeJSON(w, http.StatusOK, topicForm("/topics/new", ""))
}

// CreateTopic handles POST /topics/new.
func (h *JournalHandler) CreateTopic(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	if !parseForm(w, r) {
		return
	}
	text := r.PostForm.Get("text")

	_, err := h.topics.CreateTopic(r.Context(), userID, topicsvc.CreateTopicInput{Text: text})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusOK, topicForm("/topics/new", text).withErrors(ve))
			return
		}
		h.handleError(w, r, err)
		return
	}

	seeOther(w, r, "/topics")
}

// EditTopicForm handles GET /topics/{topic_id}/edit.
func (h *JournalHandler) EditTopicForm(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topicID, err := pathID(r, "topic_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.topics.GetTopic(r.Context(), userID, topicID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	form := topicForm(editTopicPath(t.ID), t.Text)
	form.Topic = toTopicView(t)
	writeJSON(w, http.StatusOK, form)
}

// UpdateTopic handles POST /topics/{topic_id}/edit.
func (h *JournalHandler) UpdateTopic(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topicID, err := pathID(r, "topic_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !parseForm(w, r) {
		return
	}
	text := r.PostForm.Get("text")

	_, err = h.topics.UpdateTopic(r.Context(), userID, topicsvc.UpdateTopicInput{TopicID: topicID, Text: text})
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			h.handleError(w, r, err)
			return
		}

		t, getErr := h.topics.GetTopic(r.Context(), userID, topicID)
		if getErr != nil {
			h.handleError(w, r, getErr)
			return
		}
		form := topicForm(editTopicPath(topicID), text).withErrors(ve)
		form.Topic = toTopicView(t)
		writeJSON(w, http.StatusOK, form)
		return
	}

	seeOther(w, r, "/topics")
}

// NewEntryForm handles GET /topics/{topic_id}/entries/new.
func (h *JournalHandler) NewEntryForm(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topicID, err := pathID(r, "topic_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.topics.GetTopic(r.Context(), userID, topicID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	form := entryForm(newEntryPath(t.ID), "")
	form.Topic = toTopicView(t)
	writeJSON(w, http.StatusOK, form)
}

// CreateEntry handles POST /topics/{topic_id}/entries/new. The entry is
// always bound to the topic in the URL; a topic field in the form is ignored.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	topicID, err := pathID(r, "topic_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !parseForm(w, r) {
		return
	}
	text := r.PostForm.Get("text")

	_, err = h.entries.CreateEntry(r.Context(), userID, entrysvc.CreateEntryInput{TopicID: topicID, Text: text})
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			h.handleError(w, r, err)
			return
		}

		t, getErr := h.topics.GetTopic(r.Context(), userID, topicID)
		if getErr != nil {
			h.handleError(w, r, getErr)
			return
		}
		form := entryForm(newEntryPath(topicID), text).withErrors(ve)
		form.Topic = toTopicView(t)
		writeJSON(w, http.StatusOK, form)
		return
	}

	seeOther(w, r, topicPath(topicID))
}

// EditEntryForm handles GET /entries/{entry_id}/edit.
func (h *JournalHandler) EditEntryForm(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	entryID, err := pathID(r, "entry_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	detail, err := h.entries.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	form := entryForm(editEntryPath(entryID), detail.Entry.Text)
	form.Topic = toTopicView(detail.Topic)
	form.Entry = toEntryView(detail.Entry)
	writeJSON(w, http.StatusOK, form)
}

// UpdateEntry handles POST /entries/{entry_id}/edit.
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	entryID, err := pathID(r, "entry_id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !parseForm(w, r) {
		return
	}
	text := r.PostForm.Get("text")

	updated, err := h.entries.UpdateEntry(r.Context(), userID, entrysvc.UpdateEntryInput{EntryID: entryID, Text: text})
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			h.handleError(w, r, err)
			return
		}

		detail, getErr := h.entries.GetEntry(r.Context(), userID, entryID)
		if getErr != nil {
			h.handleError(w, r, getErr)
			return
		}
		form := entryForm(editEntryPath(entryID), text).withErrors(ve)
		form.Topic = toTopicView(detail.Topic)
		form.Entry = toEntryView(detail.Entry)
		writeJSON(w, http.StatusOK, form)
		return
	}

	seeOther(w, r, topicPath(updated.Topic.ID))
}

func (h *JournalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, errBadID):
		notFound(w)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func topicPath(id uuid.UUID) string     { return "/topics/" + id.String() }
func editTopicPath(id uuid.UUID) string { return "/topics/" + id.String() + "/edit" }
func newEntryPath(id uuid.UUID) string  { return "/topics/" + id.String() + "/entries/new" }
func editEntryPath(id uuid.UUID) string { return "/entries/" + id.String() + "/edit" }

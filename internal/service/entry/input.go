package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// TextMaxLen is the maximum entry length in characters.
const TextMaxLen = 10000

// CreateEntryInput holds the parameters for adding an entry to a topic.
// TopicID always comes from the guarded URL, never from form data.
type CreateEntryInput struct {
	TopicID uuid.UUID
	Text    string
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	errs = append(errs, validateText(i.Text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for editing an entry.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	Text    string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	errs = append(errs, validateText(i.Text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(text string) []domain.FieldError {
	if !utf8.ValidString(text) {
		return []domain.FieldError{{Field: "text", Message: "invalid characters"}}
	}
	if strings.ContainsRune(text, 0) {
		return []domain.FieldError{{Field: "text", Message: "null characters are not allowed"}}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.FieldError{{Field: "text", Message: "required"}}
	}
	if utf8.RuneCountInString(text) > TextMaxLen {
		return []domain.FieldError{{Field: "text", Message: "max 10000 characters"}}
	}
	return nil
}

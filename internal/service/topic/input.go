package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// TextMaxLen is the maximum topic length in characters.
const TextMaxLen = 200

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	if errs := validateText(i.Text); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for renaming a topic.
type UpdateTopicInput struct {
	TopicID uuid.UUID
	Text    string
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
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
		return []domain.FieldError{{Field: "text", Message: "max 200 characters"}}
	}
	return nil
}

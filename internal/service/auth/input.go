package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/learning-log/internal/domain"
)

const (
	usernameMaxLen    = 150
	passwordMinLen    = 8
	passwordMaxBytes  = 72 // bcrypt ignores anything past 72 bytes
	credentialMaxSize = 4096
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case utf8.RuneCountInString(i.Username) > usernameMaxLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case !usernamePattern.MatchString(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "may contain only letters, digits and @/./+/-/_"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < passwordMinLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(i.Password) > passwordMaxBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	case isNumeric(i.Password):
		errs = append(errs, domain.FieldError{Field: "password", Message: "must not be entirely numeric"})
	case strings.EqualFold(i.Password, i.Username):
		errs = append(errs, domain.FieldError{Field: "password", Message: "too similar to the username"})
	}

	if i.PasswordConfirm != i.Password {
		errs = append(errs, domain.FieldError{Field: "password_confirm", Message: "passwords do not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for username + password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > credentialMaxSize {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > credentialMaxSize {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

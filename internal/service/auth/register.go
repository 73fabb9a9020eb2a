package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/learning-log/internal/domain"
)

// Register creates a new account and logs it in.
// A taken username is reported as a validation error on the username field.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("username", "a user with that username already exists")
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	result, err := s.startSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

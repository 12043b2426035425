package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/miaudota/internal/domain"
)

type accountAPI interface {
	Register(ctx context.Context, reg domain.Registration) (domain.Account, error)
}

// Service creates user accounts on the shelter API.
type Service struct {
	api accountAPI
	log *slog.Logger
}

// NewService creates a new Account service.
func NewService(log *slog.Logger, api accountAPI) *Service {
	return &Service{
		api: api,
		log: log.With("service", "account"),
	}
}

// RegisterInput holds a sign-up form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.Name)) < 3 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too short (min 3)"})
	}
	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Register creates a regular user account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.Account, error) {
	if err := input.Validate(); err != nil {
		return domain.Account{}, err
	}

	reg := domain.Registration{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	}
	acc, err := s.api.Register(ctx, reg)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account: register %s: %w", reg.Email, err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", acc.ID),
		slog.String("email", reg.Email),
	)
	return acc, nil
}

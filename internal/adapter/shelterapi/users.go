package shelterapi

import (
	"context"
	"net/http"

	"github.com/heartmarshall/miaudota/internal/domain"
)

type registrationPayload struct {
	Name     string `json:"nomeCompleto"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"role"`
}

// Register creates a regular user account.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.Account, error) {
	payload := registrationPayload{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     domain.RoleUser,
	}

	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/usuarios/", nil, payload, &raw); err != nil {
		return domain.Account{}, err
	}
	if raw == nil {
		return domain.Account{Name: reg.Name, Email: reg.Email, Role: domain.RoleUser}, nil
	}

	acc := domain.Account{
		ID:    stringField(raw, []string{"id", "_id"}),
		Name:  stringField(raw, applicantNameAliases),
		Email: stringField(raw, []string{"email"}),
		Role:  stringField(raw, []string{"role"}),
	}
	if acc.Email == "" {
		acc.Email = reg.Email
	}
	return acc, nil
}

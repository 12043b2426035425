package shelterapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// LoginUser is the user summary returned alongside the token.
type LoginUser struct {
	ID       any    `json:"id"`
	Name     string `json:"nomeCompleto"`
	Nickname string `json:"nome"`
	Email    string `json:"email"`
}

// DisplayName prefers the full name.
func (u LoginUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Nickname
}

// UserID returns the account identifier, "" when the response omits it.
func (u LoginUser) UserID() string {
	return domain.Stringify(u.ID)
}

// LoginResponse is the /auth/login answer.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"usuario"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	if resp.Token == "" {
		return LoginResponse{}, fmt.Errorf("shelterapi: login: response carries no token")
	}

	c.log.InfoContext(ctx, "logged in", slog.String("email", email))
	return resp, nil
}

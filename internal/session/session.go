package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// ErrNoSession is returned when nobody is logged in.
var ErrNoSession = errors.New("session: not logged in")

// Session is the logged-in user as seen by the CLI. The token is decoded
// without verification: the shelter API verifies it on every call, the
// claims here only drive presentation and admin-only commands.
type Session struct {
	Token     string
	Subject   string
	UserID    string
	Role      string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// IsAdmin reports whether the token carries the admin role.
func (s Session) IsAdmin() bool {
	return strings.EqualFold(s.Role, domain.RoleAdmin)
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without exp never expire.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type claims struct {
	jwt.RegisteredClaims
	UserID any      `json:"id,omitempty"`
	Role   string   `json:"role,omitempty"`
	Roles  []string `json:"roles,omitempty"`
	Name   string   `json:"nome,omitempty"`
	Email  string   `json:"email,omitempty"`
}

func (c claims) role() string {
	if c.Role != "" {
		return c.Role
	}
	for _, r := range c.Roles {
		if strings.EqualFold(strings.TrimPrefix(strings.ToUpper(r), "ROLE_"), domain.RoleAdmin) {
			return domain.RoleAdmin
		}
	}
	if len(c.Roles) > 0 {
		return c.Roles[0]
	}
	return ""
}

// Decode reads the claims of a bearer token without checking its signature.
func Decode(token string) (Session, error) {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Session{}, fmt.Errorf("session: decode token: %w", err)
	}

	s := Session{
		Token:   token,
		Subject: c.Subject,
		UserID:  domain.Stringify(c.UserID),
		Role:    c.role(),
		Name:    c.Name,
		Email:   c.Email,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	if s.Email == "" && strings.Contains(c.Subject, "@") {
		s.Email = c.Subject
	}
	return s, nil
}

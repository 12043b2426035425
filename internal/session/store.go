package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// record is the on-disk form. Only the token and the user summary from the
// login response are stored; claims are decoded again on every load.
type record struct {
	Token  string `json:"token"`
	UserID string `json:"id,omitempty"`
	Name   string `json:"nome,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Profile is the user summary returned by the login call. Empty fields
// fall back to the token's claims.
type Profile struct {
	ID    string
	Name  string
	Email string
}

// Store keeps the session in a JSON file readable only by the owner.
type Store struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.With("component", "session"),
	}
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Save decodes the token and persists it with the user summary, which takes
// precedence over the token's claims.
func (s *Store) Save(token string, p Profile) (Session, error) {
	sess, err := Decode(token)
	if err != nil {
		return Session{}, err
	}
	rec := record{Token: token, UserID: p.ID, Name: p.Name, Email: p.Email}
	rec.apply(&sess)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Session{}, fmt.Errorf("session: encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return Session{}, fmt.Errorf("session: create dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return Session{}, fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return Session{}, fmt.Errorf("session: write: %w", err)
	}

	return sess, nil
}

// Load returns the stored session. A file that cannot be parsed, or whose
// token cannot be decoded, is removed and reported as ErrNoSession.
func (s *Store) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: read: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Token == "" {
		s.discardLocked("unreadable session file")
		return Session{}, ErrNoSession
	}

	sess, err := Decode(rec.Token)
	if err != nil {
		s.discardLocked(err.Error())
		return Session{}, ErrNoSession
	}
	rec.apply(&sess)
	return sess, nil
}

func (r record) apply(sess *Session) {
	if r.UserID != "" {
		sess.UserID = r.UserID
	}
	if r.Name != "" {
		sess.Name = r.Name
	}
	if r.Email != "" {
		sess.Email = r.Email
	}
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when nobody is logged in.
func (s *Store) Token() (string, error) {
	sess, err := s.Load()
	if errors.Is(err, ErrNoSession) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

func (s *Store) discardLocked(reason string) {
	s.log.Warn("discarding stored session", slog.String("reason", reason), slog.String("path", s.path))
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error("remove session file", slog.String("error", err.Error()))
	}
}

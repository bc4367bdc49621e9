package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// User is the authenticated agency operator as returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// state is the on-disk shape of the session file.
type state struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Store holds the process-wide authentication state: bearer token and user.
// It is persisted as a JSON file so the session survives restarts, and is
// cleared on logout or on any 401 observed by the API client.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
	user  User
}

// DefaultPath returns the session file location under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "GeoConsole", "session.json"), nil
}

// NewStore creates a session store backed by the file at path and loads any
// previously persisted session. A missing or unreadable file simply leaves
// the store unauthenticated.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty session file path")
	}
	s := &Store{path: path}
	if b, err := os.ReadFile(path); err == nil {
		var st state
		if err := json.Unmarshal(b, &st); err == nil && st.AccessToken != "" {
			s.token = st.AccessToken
			s.user = st.User
		}
	}
	return s, nil
}

// Login stores the token and user and persists them to the session file.
func (s *Store) Login(token string, user User) error {
	if token == "" {
		return errors.New("empty access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(state{AccessToken: token, User: user})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// Logout clears the in-memory state and removes the session file.
// Removing an already-absent file is not an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = User{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Token returns the current bearer token ("" when unauthenticated). It is
// read fresh on every API request, so rotation and logout are observed on
// the next call.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current user (zero value when unauthenticated).
func (s *Store) User() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Package auth reads the signed-in identity written by the external auth
// provider. The client never issues or refreshes tokens.
package auth

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dryink/dryink/internal/errors"
)

// User is the identity of the signed-in user.
type User struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Image       string `json:"image,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Session is the contents of the session file.
type Session struct {
	User    User      `json:"user"`
	Expires time.Time `json:"expires,omitzero"`
}

// Load reads the session file at path. A missing file is not fatal: it
// returns an empty session together with a MissingToken error.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Session{}, errors.MissingToken()
	}
	if err != nil {
		return &Session{}, errors.SessionFileInvalid(path, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return &Session{}, errors.SessionFileInvalid(path, err)
	}
	if s.User.AccessToken == "" {
		return &s, errors.MissingToken()
	}
	return &s, nil
}

// Token returns the bearer token, or a MissingToken error when signed out
// or expired.
func (s *Session) Token() (string, error) {
	if !s.SignedIn() {
		return "", errors.MissingToken()
	}
	return s.User.AccessToken, nil
}

// SignedIn reports whether the session holds a usable token.
func (s *Session) SignedIn() bool {
	if s == nil || s.User.AccessToken == "" {
		return false
	}
	return s.Expires.IsZero() || time.Now().Before(s.Expires)
}

// DisplayName is shown in the sidebar footer.
func (s *Session) DisplayName() string {
	if s == nil || s.User.Name == "" {
		return "User"
	}
	return s.User.Name
}

// Email returns the user's email, or "" when signed out.
func (s *Session) Email() string {
	if s == nil {
		return ""
	}
	return s.User.Email
}

// SignOut removes the session file at path. Signing out twice is not an error.
func SignOut(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.E(errors.Op("auth.SignOut"), errors.KindIO, err)
	}
	return nil
}

// Package session persists the login response blob ("userInfo") that carries
// the bearer token for authenticated requests.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dami/hope/internal/config"
	"github.com/dami/hope/internal/models"
)

// fileName matches the storage key the web frontend used for the same blob.
const fileName = "userInfo.json"

// UserInfo is the serialized login response stored at
// ~/.config/hope/userInfo.json. Written at login, cleared on logout or on
// any 401 response, never refreshed.
type UserInfo struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type,omitempty"`
	User        *models.User `json:"user,omitempty"`
}

// Store reads and writes the session blob. Injected into the API client so
// credential handling is explicit rather than ambient.
type Store struct {
	// Dir overrides the config directory; empty means ~/.config/hope.
	Dir string
}

func (s *Store) path() (string, error) {
	dir := s.Dir
	if dir == "" {
		var err error
		dir, err = config.Dir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the session blob. A missing file is not an error: it returns
// (nil, nil), matching the "tolerate absence" contract.
func (s *Store) Load() (*UserInfo, error) {
	path, err := s.path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var info UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Save writes the session blob with 0600 perms.
func (s *Store) Save(info *UserInfo) error {
	path, err := s.path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Clear removes the session blob. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	path, err := s.path()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token returns the bearer token.
// Priority: HOPE_AUTH_TOKEN env > userInfo.json. Empty means unauthenticated.
func (s *Store) Token() string {
	if v := os.Getenv("HOPE_AUTH_TOKEN"); v != "" {
		return v
	}
	info, err := s.Load()
	if err != nil || info == nil {
		return ""
	}
	return info.AccessToken
}

// IsAuthenticated returns true if a bearer token is available.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

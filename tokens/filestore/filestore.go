package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/careerai/go-careerai/tokens"
)

const credentialsFile = "credentials.json"

// Store implements tokens.Store using a JSON file under the user's home
// directory (~/.careerai/credentials.json by default).
type Store struct {
	path string
}

var _ tokens.Store = (*Store)(nil)

// New creates a Store rooted at ~/.careerai.
func New() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewAt(filepath.Join(home, ".careerai"))
}

// NewAt creates a Store rooted at the given directory, creating it if needed.
func NewAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}
	return &Store{
		path: filepath.Join(dir, credentialsFile),
	}, nil
}

// Save writes the credentials to the file. Access token, refresh token and
// the onboarding hint land in a single write, so a reader never observes a
// partial pair.
func (s *Store) Save(creds *tokens.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// Load reads the credentials from the file. A missing file is not an error.
func (s *Store) Load() (*tokens.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var creds tokens.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return &creds, nil
}

// Clear deletes the credentials file. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}

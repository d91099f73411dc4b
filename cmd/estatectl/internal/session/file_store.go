package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/estatedesk/estate/pkg/sdk"
	"go.uber.org/zap"
)

const sessionFile = "session.json"

// FileStore implements sdk.SessionStore using a JSON file of string keys.
// This is the CLI's durable session storage.
type FileStore struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

// Ensure FileStore implements sdk.SessionStore at compile time.
var _ sdk.SessionStore = (*FileStore)(nil)

// DefaultPath returns ~/.estate/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".estate", sessionFile), nil
}

// NewFileStore creates a FileStore at path, creating its directory if needed.
// An empty path means DefaultPath.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Session reads the stored session. A missing, unreadable or corrupt file
// reads as no session.
func (s *FileStore) Session() sdk.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		s.logger.Warn("session storage unavailable", zap.String("path", s.path), zap.Error(err))
		return sdk.SessionFromValues(nil)
	}
	return sdk.SessionFromValues(values)
}

// SetToken stores token. An empty token removes it.
func (s *FileStore) SetToken(token string) error {
	return s.update(func(values map[string]string) {
		setOrDelete(values, sdk.TokenKey, token)
	})
}

// SetRole stores role as a decimal string.
func (s *FileStore) SetRole(role sdk.Role) error {
	return s.update(func(values map[string]string) {
		setOrDelete(values, sdk.RoleKey, role.StorageValue())
	})
}

// Clear removes the token and the role. The file is deleted once empty.
func (s *FileStore) Clear() error {
	return s.update(func(values map[string]string) {
		delete(values, sdk.TokenKey)
		delete(values, sdk.RoleKey)
	})
}

func (s *FileStore) update(mutate func(map[string]string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		// Start over rather than keep a file we cannot read.
		s.logger.Warn("discarding unreadable session file", zap.String("path", s.path), zap.Error(err))
		values = map[string]string{}
	}
	mutate(values)

	if len(values) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return values, nil
}

func setOrDelete(values map[string]string, key, value string) {
	if value == "" {
		delete(values, key)
		return
	}
	values[key] = value
}

package sdk

import "sync"

// Storage keys shared by every SessionStore implementation.
const (
	TokenKey = "token"
	RoleKey  = "role_id"
)

// Session is the identity the client acts with.
// An empty Token means no one is logged in.
type Session struct {
	Token string
	Role  Role
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// SessionStore persists the current session.
//
// Session never fails: an unavailable or corrupt backing store reads as an
// anonymous session with DefaultRole. Clear removes both the token and the
// role and is safe to call on an already empty store.
type SessionStore interface {
	Session() Session
	SetToken(token string) error
	SetRole(role Role) error
	Clear() error
}

// MemoryStore is an in-process SessionStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ SessionStore = (*MemoryStore)(nil)

// NewMemoryStore returns a MemoryStore, optionally seeded with a token.
func NewMemoryStore(token string) *MemoryStore {
	s := &MemoryStore{values: map[string]string{}}
	if token != "" {
		s.values[TokenKey] = token
	}
	return s
}

func (s *MemoryStore) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionFromValues(s.values)
}

func (s *MemoryStore) SetToken(token string) error {
	s.set(TokenKey, token)
	return nil
}

func (s *MemoryStore) SetRole(role Role) error {
	s.set(RoleKey, role.StorageValue())
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, TokenKey)
	delete(s.values, RoleKey)
	return nil
}

func (s *MemoryStore) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = map[string]string{}
	}
	if value == "" {
		delete(s.values, key)
		return
	}
	s.values[key] = value
}

// SessionFromValues builds a Session from raw storage values.
func SessionFromValues(values map[string]string) Session {
	return Session{
		Token: values[TokenKey],
		Role:  ParseRole(values[RoleKey]),
	}
}

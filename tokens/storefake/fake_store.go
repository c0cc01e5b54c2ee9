package fakestore

import (
	"sync"

	"github.com/careerai/go-careerai/tokens"
)

var _ tokens.Store = (*FakeStore)(nil)

// FakeStore is an in-memory tokens.Store for tests and demos.
type FakeStore struct {
	lock  sync.RWMutex
	creds *tokens.Credentials
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (s *FakeStore) Save(creds *tokens.Credentials) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	copied := *creds
	s.creds = &copied
	return nil
}

func (s *FakeStore) Load() (*tokens.Credentials, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.creds == nil {
		return nil, nil
	}
	copied := *s.creds
	return &copied, nil
}

func (s *FakeStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.creds = nil
	return nil
}

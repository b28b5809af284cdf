package storage

import (
	"iter"
	"sync"

	apperrors "userstore/internal/errors"
	"userstore/internal/user"
)

var (
	// ErrAlreadyExists indicates a record with the same ID is already stored.
	ErrAlreadyExists = apperrors.New(apperrors.CodeUserAlreadyExists, "user already exists")
	// ErrNotFound indicates the record is not stored.
	ErrNotFound = apperrors.New(apperrors.CodeUserNotFound, "user not found")
)

// Store defines the interface for a set of user records.
type Store interface {
	// Add inserts a record. Fails if a record with the same ID is present.
	Add(u user.User) error
	// Remove deletes the record with u's ID. Fails if it is not present.
	Remove(u user.User) error
	// Contains reports whether a record with the given ID is stored.
	Contains(id string) bool
	// Count returns the number of stored records.
	Count() int
	// Search returns the records matching pred, evaluated lazily.
	Search(pred user.Predicate) iter.Seq[user.User]
}

// InMemoryStore is an in-memory implementation of Store.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[string]user.User),
	}
}

// Add inserts a record.
func (s *InMemoryStore) Add(u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; exists {
		return apperrors.WithMetadata(ErrAlreadyExists.Code, ErrAlreadyExists.Message, map[string]string{"id": u.ID})
	}
	s.users[u.ID] = u
	return nil
}

// Remove deletes a record by ID.
func (s *InMemoryStore) Remove(u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.ID]; !exists {
		return apperrors.WithMetadata(ErrNotFound.Code, ErrNotFound.Message, map[string]string{"id": u.ID})
	}
	delete(s.users, u.ID)
	return nil
}

// Contains reports whether id is stored.
func (s *InMemoryStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.users[id]
	return exists
}

// Count returns the number of stored records.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

// Search scans a snapshot of the records taken at call time. Writes made
// while the sequence is being consumed are not observed.
func (s *InMemoryStore) Search(pred user.Predicate) iter.Seq[user.User] {
	s.mu.RLock()
	snapshot := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		snapshot = append(snapshot, u)
	}
	s.mu.RUnlock()

	return func(yield func(user.User) bool) {
		for _, u := range snapshot {
			if pred != nil && !pred(u) {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// Package memory provides an in-memory storage.Store for tests.
package memory

import (
	"context"
	"sync"

	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users and documents in maps. Documents round-trip through
// JSON encoding on save/load so the in-memory behavior matches the SQLite
// backend, snapshots included.
type Store struct {
	mu    sync.Mutex
	users map[string]*models.User // by id
	docs  map[string][]byte       // encoded document by user id
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users: make(map[string]*models.User),
		docs:  make(map[string][]byte),
	}
}

// LoadDocument returns a decoded copy of the user's document, or the
// default document if nothing was saved.
func (s *Store) LoadDocument(_ context.Context, userID string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.docs[userID]
	if !ok {
		return models.DefaultDocument(), nil
	}
	return models.DecodeDocument(payload), nil
}

// SaveDocument replaces the user's stored document.
func (s *Store) SaveDocument(_ context.Context, userID string, doc *models.Document) error {
	payload, err := doc.Encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[userID] = payload
	return nil
}

// CreateUser persists a new user.
func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[u.ID] = &u
	return nil
}

// GetUserByEmail retrieves a user by email.
func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// GetUserByID retrieves a user by id.
func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// UpdateUser updates an existing user's profile fields.
func (s *Store) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.ID]
	if !ok {
		return storage.ErrUserNotFound
	}
	existing.Name = user.Name
	existing.Phone = user.Phone
	existing.Avatar = user.Avatar
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

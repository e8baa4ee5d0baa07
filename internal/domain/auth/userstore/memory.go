package userstore

import (
	"context"
	"sync"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

type memoryStore struct {
	users  map[string]model.StoredUser
	mutex  sync.RWMutex
	hasher PasswordHasher
}

// NewMemory builds an in-memory credential store. Passwords are hashed the
// same way the relational backend hashes them, so swapping backends never
// changes observable behaviour.
func NewMemory(hasher PasswordHasher) Store {
	return &memoryStore{
		users:  make(map[string]model.StoredUser),
		hasher: hasher,
	}
}

func (s *memoryStore) Add(ctx context.Context, user model.User) error {
	// Hash outside the lock; the derivation is deliberately expensive.
	hash, err := s.hasher.Hash(ctx, user.Password)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[user.Email.Raw()]; ok {
		return ErrUserExists
	}
	s.users[user.Email.Raw()] = model.StoredUser{
		Email:         user.Email,
		PasswordHash:  hash,
		RequiresTwoFA: user.RequiresTwoFA,
	}
	return nil
}

func (s *memoryStore) Get(_ context.Context, email model.Email) (model.StoredUser, error) {
	s.mutex.RLock()
	stored, ok := s.users[email.Raw()]
	s.mutex.RUnlock()
	if !ok {
		return model.StoredUser{}, ErrUserNotFound
	}
	return stored, nil
}

func (s *memoryStore) Delete(_ context.Context, email model.Email) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[email.Raw()]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, email.Raw())
	return nil
}

func (s *memoryStore) Validate(ctx context.Context, email model.Email, password model.Password) error {
	stored, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	// No lock held while verifying.
	if err := s.hasher.Verify(ctx, stored.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *memoryStore) Close(context.Context) error {
	return nil
}

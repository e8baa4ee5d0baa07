package userstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
	"github.com/GuillemIscla/live-bootcamp-project/internal/platform/storage"
)

type sqliteStore struct {
	db     *gorm.DB
	hasher PasswordHasher
}

// NewSQLite builds a relational credential store on top of the shared gorm
// handle.
func NewSQLite(db *gorm.DB, hasher PasswordHasher) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlite store requires database handle")
	}
	if hasher == nil {
		return nil, fmt.Errorf("sqlite store requires a password hasher")
	}
	return &sqliteStore{db: db, hasher: hasher}, nil
}

func (s *sqliteStore) Add(ctx context.Context, user model.User) error {
	// Hash before entering the transaction so the connection is not held
	// across the expensive derivation.
	hash, err := s.hasher.Hash(ctx, user.Password)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing storage.UserRecord
		err := tx.Where("email = ?", user.Email.Raw()).First(&existing).Error
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup user: %w", err)
		}

		record := &storage.UserRecord{
			Email:         user.Email.Raw(),
			PasswordHash:  string(hash),
			RequiresTwoFA: user.RequiresTwoFA,
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

func (s *sqliteStore) Get(ctx context.Context, email model.Email) (model.StoredUser, error) {
	var record storage.UserRecord
	err := s.db.WithContext(ctx).Where("email = ?", email.Raw()).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StoredUser{}, ErrUserNotFound
	}
	if err != nil {
		return model.StoredUser{}, fmt.Errorf("fetch user: %w", err)
	}

	parsedEmail, err := model.ParseEmail(record.Email)
	if err != nil {
		return model.StoredUser{}, fmt.Errorf("stored email no longer parses: %w", err)
	}
	return model.StoredUser{
		Email:         parsedEmail,
		PasswordHash:  model.PasswordHash(record.PasswordHash),
		RequiresTwoFA: record.RequiresTwoFA,
	}, nil
}

func (s *sqliteStore) Delete(ctx context.Context, email model.Email) error {
	result := s.db.WithContext(ctx).
		Where("email = ?", email.Raw()).
		Delete(&storage.UserRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *sqliteStore) Validate(ctx context.Context, email model.Email, password model.Password) error {
	stored, err := s.Get(ctx, email)
	if err != nil {
		return err
	}
	if err := s.hasher.Verify(ctx, stored.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *sqliteStore) Close(context.Context) error {
	return nil
}

// Package userstore persists credential records, one per email.
package userstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// Sentinel errors callers branch on. Anything else is an unexpected backend
// failure and is wrapped with its cause.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store defines the behaviour required of a credential store backend.
//
// Validate returns ErrUserNotFound when the email is absent and
// ErrInvalidCredentials when the password is wrong; the orchestrator needs
// the distinction even though both collapse to the same outward signal.
type Store interface {
	Add(ctx context.Context, user model.User) error
	Get(ctx context.Context, email model.Email) (model.StoredUser, error)
	Delete(ctx context.Context, email model.Email) error
	Validate(ctx context.Context, email model.Email, password model.Password) error
	Close(ctx context.Context) error
}

// PasswordHasher is the slice of the hashing capability the store needs.
// Records are hashed before the write; comparison goes through Verify only.
type PasswordHasher interface {
	Hash(ctx context.Context, password model.Password) (model.PasswordHash, error)
	Verify(ctx context.Context, hash model.PasswordHash, candidate model.Password) error
}

// Driver identifiers supported by the factory.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config describes the store selection parameters.
type Config struct {
	Driver string
}

// Dependencies captures external handles required by certain drivers.
type Dependencies struct {
	DB     *gorm.DB
	Hasher PasswordHasher
}

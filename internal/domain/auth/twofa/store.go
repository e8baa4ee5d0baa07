// Package twofa stores the one-time, time-bound second-factor challenge
// issued per identity: at most one live (attempt id, code) pair per email,
// the newest login always superseding the previous one.
package twofa

import (
	"context"
	"errors"
	"time"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// ErrCodeNotFound signals that no live challenge exists for the identity,
// whether never issued, already consumed, or expired.
var ErrCodeNotFound = errors.New("2FA code not found")

// ChallengeTTL bounds how long an issued challenge stays verifiable.
const ChallengeTTL = 10 * time.Minute

// Challenge is the live pair for one identity.
type Challenge struct {
	AttemptID model.LoginAttemptID
	Code      model.TwoFACode
}

// Store defines the behaviour required of a challenge store backend.
//
// Add overwrites any prior entry for the identity. Remove is idempotent:
// deleting an absent entry is not an error, the caller's flow has already
// succeeded by the time it removes.
//
// A Get/Remove sequence is not atomic across calls; two concurrent
// verifications can both observe the same live challenge. Known race,
// inherited from the single-key backend model.
type Store interface {
	Add(ctx context.Context, email model.Email, challenge Challenge) error
	Get(ctx context.Context, email model.Email) (Challenge, error)
	Remove(ctx context.Context, email model.Email) error
	Close(ctx context.Context) error
}

// Driver identifiers supported by the factory.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config describes the store selection parameters.
type Config struct {
	Driver string
	TTL    time.Duration
	Redis  *RedisConfig
	Memory *MemoryConfig
}

// MemoryConfig holds in-memory tuning knobs.
type MemoryConfig struct {
	GCInterval time.Duration
}

// RedisConfig captures connection options.
type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// Package banstore tracks revoked session tokens until they would have
// expired on their own.
package banstore

import (
	"context"
	"time"
)

// Store is a set of revoked token identifiers with a TTL. Contains sits on
// the hot path of every token validation and must stay O(1)-ish.
type Store interface {
	Add(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	Close(ctx context.Context) error
}

// Driver identifiers supported by the factory.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config describes the store selection parameters. TTL should match the
// token TTL: a ban never needs to outlive the token it bans.
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

package twofa

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestRedisStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	store, err := NewRedis(Config{
		TTL:   time.Minute,
		Redis: &RedisConfig{Addr: mr.Addr()},
	})
	if err != nil {
		t.Fatalf("NewRedis error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close(ctx)
	})

	email := mustEmail(t, "user@example.com")

	if _, err := store.Get(ctx, email); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("Get before Add: got %v, want ErrCodeNotFound", err)
	}

	challenge := newChallenge(t)
	if err := store.Add(ctx, email, challenge); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	got, err := store.Get(ctx, email)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.AttemptID != challenge.AttemptID || got.Code != challenge.Code {
		t.Fatalf("Get returned %+v, want %+v", got, challenge)
	}

	if err := store.Remove(ctx, email); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := store.Get(ctx, email); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("Get after Remove: got %v, want ErrCodeNotFound", err)
	}
}

func TestRedisStoreOverwriteAndExpiry(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	store, err := NewRedis(Config{
		TTL:   time.Minute,
		Redis: &RedisConfig{Addr: mr.Addr()},
	})
	if err != nil {
		t.Fatalf("NewRedis error: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close(ctx)
	})

	email := mustEmail(t, "user@example.com")
	first := newChallenge(t)
	second := newChallenge(t)

	if err := store.Add(ctx, email, first); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := store.Add(ctx, email, second); err != nil {
		t.Fatalf("second Add error: %v", err)
	}

	got, err := store.Get(ctx, email)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.AttemptID != second.AttemptID {
		t.Fatal("latest challenge should supersede the earlier one")
	}

	// Expiry is delegated to the backend key TTL.
	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, email); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("Get after expiry: got %v, want ErrCodeNotFound", err)
	}
}

func TestRedisStoreConfigErrors(t *testing.T) {
	if _, err := NewRedis(Config{}); err == nil {
		t.Error("expected error for missing redis config")
	}
	if _, err := NewRedis(Config{Redis: &RedisConfig{}}); err == nil {
		t.Error("expected error for missing redis address")
	}
}

func TestFactorySelectsDrivers(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default memory", cfg: Config{TTL: time.Minute}},
		{name: "memory", cfg: Config{Driver: DriverMemory, TTL: time.Minute}},
		{name: "redis", cfg: Config{Driver: DriverRedis, TTL: time.Minute, Redis: &RedisConfig{Addr: mr.Addr()}}},
		{name: "unknown", cfg: Config{Driver: "memcached"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected factory error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			t.Cleanup(func() {
				_ = store.Close(context.Background())
			})
		})
	}
}

package banstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestRedisStoreRevocation(t *testing.T) {
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

	if err := store.Add(ctx, "header.claims.sig"); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	banned, err := store.Contains(ctx, "header.claims.sig")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if !banned {
		t.Fatal("expected token to be banned")
	}

	banned, err = store.Contains(ctx, "other.token.sig")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if banned {
		t.Error("unrelated token reported banned")
	}

	// TTL is delegated to the backend.
	mr.FastForward(2 * time.Minute)

	banned, err = store.Contains(ctx, "header.claims.sig")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if banned {
		t.Error("ban should expire with the key TTL")
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

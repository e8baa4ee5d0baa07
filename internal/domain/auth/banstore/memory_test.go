package banstore

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRevocation(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(Config{TTL: time.Minute})
	t.Cleanup(func() {
		_ = store.Close(ctx)
	})

	banned, err := store.Contains(ctx, "some.jwt.token")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if banned {
		t.Fatal("token should not be banned before Add")
	}

	if err := store.Add(ctx, "some.jwt.token"); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	// Revocation is monotonic within the TTL.
	for i := 0; i < 3; i++ {
		banned, err := store.Contains(ctx, "some.jwt.token")
		if err != nil {
			t.Fatalf("Contains error: %v", err)
		}
		if !banned {
			t.Fatalf("token should stay banned (check #%d)", i+1)
		}
	}

	banned, err = store.Contains(ctx, "other.jwt.token")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if banned {
		t.Error("unrelated token reported banned")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(Config{
		TTL:    20 * time.Millisecond,
		Memory: &MemoryConfig{GCInterval: 5 * time.Millisecond},
	})
	t.Cleanup(func() {
		_ = store.Close(ctx)
	})

	if err := store.Add(ctx, "short.lived.token"); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	banned, err := store.Contains(ctx, "short.lived.token")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if banned {
		t.Error("ban should lapse once the token itself would have expired")
	}
}

func TestMemoryStoreCloseIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(Config{TTL: time.Minute})
	if err := store.Close(ctx); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		t.Fatalf("second Close error: %v", err)
	}
}

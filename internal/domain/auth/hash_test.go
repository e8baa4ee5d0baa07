package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// Tests use a deliberately cheap cost so the suite stays fast.
func testHasher() PasswordHasher {
	return NewArgonHasher(HasherParams{Time: 1, Memory: 8 * 1024, Threads: 1})
}

func mustPassword(t *testing.T, raw string) model.Password {
	t.Helper()
	password, err := model.ParsePassword(raw)
	if err != nil {
		t.Fatalf("ParsePassword(%q): %v", raw, err)
	}
	return password
}

func TestHashVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()
	password := mustPassword(t, "Password123")

	hash, err := hasher.Hash(ctx, password)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(string(hash), "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", string(hash))
	}

	if err := hasher.Verify(ctx, hash, password); err != nil {
		t.Errorf("Verify rejected the original password: %v", err)
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()

	hash, err := hasher.Hash(ctx, mustPassword(t, "Password123"))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	err = hasher.Verify(ctx, hash, mustPassword(t, "Password124"))
	if err != ErrHashMismatch {
		t.Errorf("expected ErrHashMismatch, got %v", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()
	password := mustPassword(t, "Password123")

	first, err := hasher.Hash(ctx, password)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := hasher.Hash(ctx, password)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ")
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	ctx := context.Background()
	hasher := testHasher()
	candidate := mustPassword(t, "Password123")

	malformed := []string{
		"",
		"plaintext",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=8192,t=1,p=1$not-base64!$also-not!",
	}
	for _, hash := range malformed {
		if err := hasher.Verify(ctx, model.PasswordHash(hash), candidate); err == nil {
			t.Errorf("Verify accepted malformed hash %q", hash)
		}
	}
}

func TestHashHonoursContextCancellation(t *testing.T) {
	hasher := testHasher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := hasher.Hash(ctx, mustPassword(t, "Password123")); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestVerifyAcceptsForeignCostParameters(t *testing.T) {
	ctx := context.Background()
	// Hash under one cost, verify under another: parameters come from the
	// stored hash.
	writer := NewArgonHasher(HasherParams{Time: 1, Memory: 8 * 1024, Threads: 1})
	reader := NewArgonHasher(HasherParams{Time: 2, Memory: 16 * 1024, Threads: 2})

	password := mustPassword(t, "Password123")
	hash, err := writer.Hash(ctx, password)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if err := reader.Verify(ctx, hash, password); err != nil {
		t.Errorf("Verify with different live params failed: %v", err)
	}
}

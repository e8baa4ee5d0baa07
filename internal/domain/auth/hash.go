package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// Argon2id defaults, applied when the config leaves a knob at zero.
const (
	defaultArgonTime    = 3
	defaultArgonMemory  = 64 * 1024 // KiB
	defaultArgonThreads = 4
	argonSaltLen        = 16
	argonKeyLen         = 32
)

var (
	ErrHashMismatch      = errors.New("password does not match hash")
	ErrInvalidHashFormat = errors.New("invalid password hash format")
)

// PasswordHasher derives and verifies one-way password hashes.
type PasswordHasher interface {
	Hash(ctx context.Context, password model.Password) (model.PasswordHash, error)
	Verify(ctx context.Context, hash model.PasswordHash, candidate model.Password) error
}

// HasherParams tunes the argon2id cost.
type HasherParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// argonHasher hashes with argon2id in PHC string format. A weighted semaphore
// bounds how many derivations run at once; the memory-hard function would
// otherwise let a burst of logins exhaust the process.
type argonHasher struct {
	params HasherParams
	gate   *semaphore.Weighted
}

// NewArgonHasher builds the production hasher.
func NewArgonHasher(params HasherParams) PasswordHasher {
	if params.Time == 0 {
		params.Time = defaultArgonTime
	}
	if params.Memory == 0 {
		params.Memory = defaultArgonMemory
	}
	if params.Threads == 0 {
		params.Threads = defaultArgonThreads
	}
	return &argonHasher{
		params: params,
		gate:   semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

func (h *argonHasher) Hash(ctx context.Context, password model.Password) (model.PasswordHash, error) {
	if err := h.gate.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.gate.Release(1)

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password.Raw()), salt,
		h.params.Time, h.params.Memory, h.params.Threads, argonKeyLen,
	)

	phc := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return model.PasswordHash(phc), nil
}

func (h *argonHasher) Verify(ctx context.Context, hash model.PasswordHash, candidate model.Password) error {
	if err := h.gate.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.gate.Release(1)

	// Cost parameters come from the stored hash, not the live config, so
	// records hashed under older settings keep verifying.
	parts := strings.Split(string(hash), "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrInvalidHashFormat
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return ErrInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrInvalidHashFormat
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrInvalidHashFormat
	}

	computed := argon2.IDKey(
		[]byte(candidate.Raw()), salt,
		time, memory, threads, uint32(len(expected)),
	)

	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrHashMismatch
	}
	return nil
}

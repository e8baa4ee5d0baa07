// Package model holds the validated value types shared across the auth
// domain. Secret-bearing values redact themselves on default formatting; the
// raw value is only reachable through an explicit accessor.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/google/uuid"
)

// Logger provides the minimal logging contract required by the auth domain.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var (
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidLoginAttemptID = errors.New("invalid login attempt id")
	ErrInvalidTwoFACode      = errors.New("invalid 2FA code")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Email is a validated, immutable email address.
type Email struct {
	value string
}

// ParseEmail validates the local@domain.tld shape.
func ParseEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

// Raw returns the address for intentional use (store keys, token subject).
func (e Email) Raw() string {
	return e.value
}

// String redacts the address so accidental logging never leaks it.
func (e Email) String() string {
	return "[redacted email]"
}

func (e Email) IsZero() bool {
	return e.value == ""
}

// Password is a validated raw secret. It exists only in-flight during signup
// and login; at rest only its hash is stored.
type Password struct {
	value string
}

// ParsePassword enforces length >= 8 with at least one uppercase and one
// lowercase character.
func ParsePassword(raw string) (Password, error) {
	if len(raw) < 8 {
		return Password{}, ErrInvalidPassword
	}
	var hasUpper, hasLower bool
	for _, c := range raw {
		switch {
		case 'A' <= c && c <= 'Z':
			hasUpper = true
		case 'a' <= c && c <= 'z':
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return Password{}, ErrInvalidPassword
	}
	return Password{value: raw}, nil
}

func (p Password) Raw() string {
	return p.value
}

func (p Password) String() string {
	return "[redacted password]"
}

// PasswordHash is the one-way derived value stored at rest. Never compared
// with a raw Password except through the hasher.
type PasswordHash string

func (h PasswordHash) String() string {
	return "[redacted hash]"
}

// User is the signup input: credentials plus the second-factor flag.
type User struct {
	Email         Email
	Password      Password
	RequiresTwoFA bool
}

// StoredUser is what comes back out of a user store.
type StoredUser struct {
	Email         Email
	PasswordHash  PasswordHash
	RequiresTwoFA bool
}

// LoginAttemptID identifies one 2FA-pending login. UUID-v4 shaped.
type LoginAttemptID struct {
	value string
}

// NewLoginAttemptID generates a random attempt id.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID{value: uuid.NewString()}
}

// ParseLoginAttemptID validates the UUID shape of a caller-supplied id.
func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return LoginAttemptID{}, ErrInvalidLoginAttemptID
	}
	return LoginAttemptID{value: raw}, nil
}

func (id LoginAttemptID) Raw() string {
	return id.value
}

func (id LoginAttemptID) String() string {
	return "[redacted attempt id]"
}

// TwoFACode is a 6-digit, left-zero-padded numeric code.
type TwoFACode struct {
	value string
}

// NewTwoFACode draws a uniformly random code in 000000..999999.
func NewTwoFACode() (TwoFACode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return TwoFACode{}, fmt.Errorf("generate 2FA code: %w", err)
	}
	return TwoFACode{value: fmt.Sprintf("%06d", n.Int64())}, nil
}

// ParseTwoFACode validates length and digit content.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != 6 {
		return TwoFACode{}, ErrInvalidTwoFACode
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return TwoFACode{}, ErrInvalidTwoFACode
		}
	}
	return TwoFACode{value: raw}, nil
}

func (c TwoFACode) Raw() string {
	return c.value
}

func (c TwoFACode) String() string {
	return "[redacted 2FA code]"
}

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string
	ExpiresAt int64
}

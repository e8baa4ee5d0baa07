package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/banstore"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// Decision classifies the outcome of validating a presented token.
type Decision int

const (
	// DecisionValid means the token is well formed, signed by us, unexpired
	// and not revoked.
	DecisionValid Decision = iota
	// DecisionInvalid covers revoked, expired, or wrongly signed tokens.
	DecisionInvalid
	// DecisionMalformed means the input is not a parseable token at all.
	DecisionMalformed
	// DecisionTransientError means the revocation backend could not answer;
	// the token's standing is unknown.
	DecisionTransientError
)

func (d Decision) String() string {
	switch d {
	case DecisionValid:
		return "valid"
	case DecisionInvalid:
		return "invalid"
	case DecisionMalformed:
		return "malformed"
	case DecisionTransientError:
		return "transient error"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

const (
	// DefaultCookieName matches the cookie the HTTP surface reads and writes.
	DefaultCookieName = "jwt"

	defaultTokenTTL = 10 * time.Minute
)

// TokenConfig carries the signing and cookie parameters.
type TokenConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieDomain string
}

// TokenService signs, validates and refreshes session tokens. Every
// validation consults the revocation store before trusting a signature, so a
// banned token stays dead even while its expiry has not passed.
type TokenService struct {
	secret       []byte
	ttl          time.Duration
	cookieName   string
	cookieDomain string
	banned       banstore.Store
	now          func() time.Time
}

// NewTokenService builds a token service over the given revocation store.
func NewTokenService(cfg TokenConfig, banned banstore.Store) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	if banned == nil {
		return nil, errors.New("banned token store is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return &TokenService{
		secret:       []byte(cfg.Secret),
		ttl:          ttl,
		cookieName:   name,
		cookieDomain: cfg.CookieDomain,
		banned:       banned,
		now:          time.Now,
	}, nil
}

// Issue signs a fresh HS256 token carrying the identity as subject.
func (s *TokenService) Issue(email model.Email) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   email.Raw(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate classifies the presented token. The returned error is diagnostic
// only and is non-nil for every decision except DecisionValid.
//
// Revocation is checked before any parse, so a banned token never gets as far
// as signature verification.
func (s *TokenService) Validate(ctx context.Context, raw string) (model.Claims, Decision, error) {
	banned, err := s.banned.Contains(ctx, raw)
	if err != nil {
		return model.Claims{}, DecisionTransientError, fmt.Errorf("revocation check: %w", err)
	}
	if banned {
		return model.Claims{}, DecisionInvalid, errors.New("token is banned")
	}

	if !looksLikeJWT(raw) {
		return model.Claims{}, DecisionMalformed, errors.New("token is not a three-segment JWT")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return model.Claims{}, DecisionMalformed, fmt.Errorf("parse token: %w", err)
		}
		return model.Claims{}, DecisionInvalid, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return model.Claims{}, DecisionInvalid, errors.New("token failed validation")
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}
	return model.Claims{
		Subject:   claims.Subject,
		ExpiresAt: expiresAt,
	}, DecisionValid, nil
}

// Refresh validates the old token and, when valid, issues a new one for the
// same subject. The old token is not revoked; it lapses on its own expiry.
func (s *TokenService) Refresh(ctx context.Context, raw string) (string, Decision, error) {
	claims, decision, err := s.Validate(ctx, raw)
	if decision != DecisionValid {
		return "", decision, err
	}
	email, err := model.ParseEmail(claims.Subject)
	if err != nil {
		return "", DecisionInvalid, fmt.Errorf("token subject: %w", err)
	}
	token, err := s.Issue(email)
	if err != nil {
		return "", DecisionTransientError, err
	}
	return token, DecisionValid, nil
}

// Revoke bans the raw token string for the remainder of its possible life.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	if err := s.banned.Add(ctx, raw); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// CookieName reports the cookie the HTTP surface should read tokens from.
func (s *TokenService) CookieName() string {
	return s.cookieName
}

// Cookie wraps a signed token in the session cookie.
func (s *TokenService) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		Domain:   s.cookieDomain,
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearingCookie expires the session cookie on the client.
func (s *TokenService) ClearingCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   s.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func looksLikeJWT(raw string) bool {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}

// Package auth implements the credential-issuance and session-validation
// core: signup, login with an optional second factor, token refresh, logout
// with revocation, and account deletion, over pluggable store backends.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/twofa"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/userstore"
	errs "github.com/GuillemIscla/live-bootcamp-project/internal/platform/errors"
)

// Logger re-exports the logging contract used across the domain.
type Logger = model.Logger

// Outward error categories the transports branch on. Unknown-user and
// wrong-password both collapse into ErrIncorrectCredentials so the API leaks
// nothing about which side of the pair failed.
var (
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrMissingToken         = errors.New("missing token")
	ErrInvalidToken         = errors.New("invalid token")
)

// Options encapsulates the dependencies required to construct a Service.
type Options struct {
	Users    userstore.Store
	Codes    twofa.Store
	Tokens   *TokenService
	Notifier Notifier
	Logger   Logger
}

// Service coordinates the stores, the token service and the notifier behind
// the use cases the transports expose.
type Service struct {
	users    userstore.Store
	codes    twofa.Store
	tokens   *TokenService
	notifier Notifier
	logger   Logger
}

// LoginResult is the outcome of a successful first authentication step.
// Either Token is set, or TwoFARequired is true and AttemptID identifies the
// pending challenge.
type LoginResult struct {
	Token         string
	TwoFARequired bool
	AttemptID     model.LoginAttemptID
}

// NewService wires a Service using the supplied options.
func NewService(opts Options) (*Service, error) {
	if opts.Users == nil {
		return nil, errors.New("auth service requires a user store")
	}
	if opts.Codes == nil {
		return nil, errors.New("auth service requires a 2FA code store")
	}
	if opts.Tokens == nil {
		return nil, errors.New("auth service requires a token service")
	}
	if opts.Logger == nil {
		return nil, errors.New("auth service requires a logger")
	}
	if opts.Notifier == nil {
		opts.Logger.Warn("auth service using log-backed 2FA notifier")
		opts.Notifier = NewLogNotifier(opts.Logger)
	}
	return &Service{
		users:    opts.Users,
		codes:    opts.Codes,
		tokens:   opts.Tokens,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}, nil
}

// SignUp registers a new account. The email must be unused; the password is
// validated and hashed before it ever reaches a backend.
func (s *Service) SignUp(ctx context.Context, rawEmail, rawPassword string, requiresTwoFA bool) error {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return err
	}
	password, err := model.ParsePassword(rawPassword)
	if err != nil {
		return err
	}

	user := model.User{
		Email:         email,
		Password:      password,
		RequiresTwoFA: requiresTwoFA,
	}
	if err := s.users.Add(ctx, user); err != nil {
		if errors.Is(err, userstore.ErrUserExists) {
			return err
		}
		return errs.Wrap(errs.KindStorage, "auth.SignUp", "add user", err)
	}
	s.logger.Info("user registered: %s", email)
	return nil
}

// Login checks the credential pair. Accounts without a second factor get a
// token straight away; the rest get a fresh challenge dispatched through the
// notifier, superseding any challenge still live for that email.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (LoginResult, error) {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return LoginResult{}, err
	}
	password, err := model.ParsePassword(rawPassword)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.users.Validate(ctx, email, password); err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) || errors.Is(err, userstore.ErrInvalidCredentials) {
			return LoginResult{}, ErrIncorrectCredentials
		}
		return LoginResult{}, errs.Wrap(errs.KindStorage, "auth.Login", "validate credentials", err)
	}

	record, err := s.users.Get(ctx, email)
	if err != nil {
		return LoginResult{}, errs.Wrap(errs.KindStorage, "auth.Login", "load user", err)
	}

	if !record.RequiresTwoFA {
		token, err := s.tokens.Issue(email)
		if err != nil {
			return LoginResult{}, errs.Wrap(errs.KindDomain, "auth.Login", "issue token", err)
		}
		s.logger.Info("login succeeded: %s", email)
		return LoginResult{Token: token}, nil
	}

	attemptID := model.NewLoginAttemptID()
	code, err := model.NewTwoFACode()
	if err != nil {
		return LoginResult{}, errs.Wrap(errs.KindDomain, "auth.Login", "generate 2FA code", err)
	}
	challenge := twofa.Challenge{AttemptID: attemptID, Code: code}
	if err := s.codes.Add(ctx, email, challenge); err != nil {
		return LoginResult{}, errs.Wrap(errs.KindStorage, "auth.Login", "store 2FA challenge", err)
	}
	if err := s.notifier.SendTwoFACode(ctx, email, attemptID, code); err != nil {
		return LoginResult{}, errs.Wrap(errs.KindDomain, "auth.Login", "send 2FA code", err)
	}
	s.logger.Info("2FA challenge issued: %s", email)
	return LoginResult{TwoFARequired: true, AttemptID: attemptID}, nil
}

// VerifyTwoFA completes a pending challenge. The stored pair must match both
// the attempt id and the code; a used challenge cannot be replayed.
func (s *Service) VerifyTwoFA(ctx context.Context, rawEmail, rawAttemptID, rawCode string) (string, error) {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return "", err
	}
	attemptID, err := model.ParseLoginAttemptID(rawAttemptID)
	if err != nil {
		return "", err
	}
	code, err := model.ParseTwoFACode(rawCode)
	if err != nil {
		return "", err
	}

	challenge, err := s.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, twofa.ErrCodeNotFound) {
			return "", ErrIncorrectCredentials
		}
		return "", errs.Wrap(errs.KindStorage, "auth.VerifyTwoFA", "load 2FA challenge", err)
	}
	if challenge.AttemptID != attemptID || challenge.Code != code {
		return "", ErrIncorrectCredentials
	}

	if err := s.codes.Remove(ctx, email); err != nil {
		return "", errs.Wrap(errs.KindStorage, "auth.VerifyTwoFA", "consume 2FA challenge", err)
	}
	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", errs.Wrap(errs.KindDomain, "auth.VerifyTwoFA", "issue token", err)
	}
	s.logger.Info("2FA verified: %s", email)
	return token, nil
}

// VerifyToken classifies a presented token without side effects.
func (s *Service) VerifyToken(ctx context.Context, raw string) (model.Claims, Decision) {
	claims, decision, err := s.tokens.Validate(ctx, raw)
	if decision == DecisionTransientError {
		s.logger.Warn("token verification unavailable: %v", err)
	}
	return claims, decision
}

// Refresh validates the presented token and issues a replacement for the
// same subject. The old token keeps working until its own expiry.
func (s *Service) Refresh(ctx context.Context, raw string) (string, Decision, error) {
	return s.tokens.Refresh(ctx, raw)
}

// Logout validates the presented token and revokes it. Revocation outlives
// any remaining token lifetime, so a logged-out token can never validate
// again.
func (s *Service) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return ErrMissingToken
	}
	_, decision, err := s.tokens.Validate(ctx, raw)
	switch decision {
	case DecisionValid:
	case DecisionTransientError:
		return errs.Wrap(errs.KindStorage, "auth.Logout", "validate token", err)
	default:
		return ErrInvalidToken
	}
	if err := s.tokens.Revoke(ctx, raw); err != nil {
		return errs.Wrap(errs.KindStorage, "auth.Logout", "revoke token", err)
	}
	s.logger.Info("logout completed, token revoked")
	return nil
}

// DeleteAccount removes the credential record for the email.
func (s *Service) DeleteAccount(ctx context.Context, rawEmail string) error {
	email, err := model.ParseEmail(rawEmail)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, email); err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return err
		}
		return errs.Wrap(errs.KindStorage, "auth.DeleteAccount", "delete user", err)
	}
	s.logger.Info("account deleted: %s", email)
	return nil
}

// CookieName reports the cookie the HTTP surface reads tokens from.
func (s *Service) CookieName() string {
	return s.tokens.CookieName()
}

// Cookie wraps a signed token in the session cookie.
func (s *Service) Cookie(token string) *http.Cookie {
	return s.tokens.Cookie(token)
}

// ClearingCookie expires the session cookie on the client.
func (s *Service) ClearingCookie() *http.Cookie {
	return s.tokens.ClearingCookie()
}

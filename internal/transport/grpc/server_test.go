package grpctransport

import (
	"context"
	"testing"
	"time"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/banstore"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/twofa"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/userstore"
	"github.com/GuillemIscla/live-bootcamp-project/internal/transport/grpc/authpb"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newTestServer(t *testing.T) (*Server, *auth.Service) {
	t.Helper()
	ctx := context.Background()

	hasher := auth.NewArgonHasher(auth.HasherParams{Time: 1, Memory: 8 * 1024, Threads: 1})
	users := userstore.NewMemory(hasher)
	codes := twofa.NewMemory(twofa.Config{TTL: time.Minute})
	banned := banstore.NewMemory(banstore.Config{TTL: time.Minute})
	t.Cleanup(func() {
		_ = users.Close(ctx)
		_ = codes.Close(ctx)
		_ = banned.Close(ctx)
	})

	tokens, err := auth.NewTokenService(auth.TokenConfig{Secret: "test-secret", TTL: time.Minute}, banned)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	svc, err := auth.NewService(auth.Options{
		Users:  users,
		Codes:  codes,
		Tokens: tokens,
		Logger: nopLogger{},
	})
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}

	server, err := NewServer(":0", svc, nopLogger{})
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server, svc
}

func TestVerifyTokenClassification(t *testing.T) {
	ctx := context.Background()
	server, svc := newTestServer(t)

	if err := svc.SignUp(ctx, "user@example.com", "Password123", false); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	result, err := svc.Login(ctx, "user@example.com", "Password123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	banned := result.Token
	if err := svc.Logout(ctx, banned); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	fresh, err := svc.Login(ctx, "user@example.com", "Password123")
	if err != nil {
		t.Fatalf("second Login error: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  authpb.VerifyTokenResponse_TokenStatus
	}{
		{name: "valid", token: fresh.Token, want: authpb.VerifyTokenResponse_VALID},
		{name: "banned", token: banned, want: authpb.VerifyTokenResponse_INVALID},
		{name: "not a jwt", token: "not-a-jwt", want: authpb.VerifyTokenResponse_UNPROCESSABLE},
		{name: "empty", token: "", want: authpb.VerifyTokenResponse_UNPROCESSABLE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := server.VerifyToken(ctx, &authpb.VerifyTokenRequest{Token: tt.token})
			if err != nil {
				t.Fatalf("VerifyToken error: %v", err)
			}
			if resp.GetStatus() != tt.want {
				t.Fatalf("status = %v, want %v", resp.GetStatus(), tt.want)
			}
		})
	}
}

func TestNewServerValidation(t *testing.T) {
	_, svc := newTestServer(t)
	if _, err := NewServer("", svc, nopLogger{}); err == nil {
		t.Error("expected error for empty address")
	}
	if _, err := NewServer(":0", nil, nopLogger{}); err == nil {
		t.Error("expected error for nil auth service")
	}
	if _, err := NewServer(":0", svc, nil); err == nil {
		t.Error("expected error for nil logger")
	}
}

// Package grpctransport exposes token verification over gRPC. The
// classification mirrors the HTTP verify-token path for the same token
// string.
package grpctransport

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth"
	"github.com/GuillemIscla/live-bootcamp-project/internal/transport/grpc/authpb"
)

// Server serves the AuthService RPCs.
type Server struct {
	authpb.UnimplementedAuthServiceServer
	address string
	auth    *auth.Service
	logger  auth.Logger
}

// NewServer builds a gRPC server bound to the given address.
func NewServer(address string, authService *auth.Service, logger auth.Logger) (*Server, error) {
	if address == "" {
		return nil, errors.New("grpc server requires an address")
	}
	if authService == nil {
		return nil, errors.New("grpc server requires the auth service")
	}
	if logger == nil {
		return nil, errors.New("grpc server requires a logger")
	}
	return &Server{
		address: address,
		auth:    authService,
		logger:  logger,
	}, nil
}

// Run listens and serves until the context is cancelled, then stops
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	authpb.RegisterAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info("stopping gRPC server")
		srv.GracefulStop()
	}()

	s.logger.Info("gRPC server listening on %s", s.address)
	return srv.Serve(listener)
}

// VerifyToken classifies the presented token string.
func (s *Server) VerifyToken(ctx context.Context, req *authpb.VerifyTokenRequest) (*authpb.VerifyTokenResponse, error) {
	_, decision := s.auth.VerifyToken(ctx, req.GetToken())

	var tokenStatus authpb.VerifyTokenResponse_TokenStatus
	switch decision {
	case auth.DecisionValid:
		tokenStatus = authpb.VerifyTokenResponse_VALID
	case auth.DecisionInvalid:
		tokenStatus = authpb.VerifyTokenResponse_INVALID
	case auth.DecisionMalformed:
		tokenStatus = authpb.VerifyTokenResponse_UNPROCESSABLE
	default:
		tokenStatus = authpb.VerifyTokenResponse_UNEXPECTED
	}
	return &authpb.VerifyTokenResponse{Status: tokenStatus}, nil
}

// Package authapi exposes the credential and session use cases over HTTP.
package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/userstore"
	platformerrors "github.com/GuillemIscla/live-bootcamp-project/internal/platform/errors"
	httptransport "github.com/GuillemIscla/live-bootcamp-project/internal/transport/http"
)

// Stable outward error strings. Backend details never reach the body.
const (
	msgMalformedBody        = "malformed request body"
	msgInvalidCredentials   = "invalid credentials"
	msgIncorrectCredentials = "incorrect credentials"
	msgUserExists           = "user already exists"
	msgUserNotFound         = "user not found"
	msgMissingToken         = "missing token"
	msgInvalidToken         = "invalid token"
	msgMalformedToken       = "malformed token"
	msgUnexpected           = "unexpected error"
)

// Service wires the auth orchestrator into gin routes.
type Service struct {
	auth   *auth.Service
	logger auth.Logger
}

// NewService creates the HTTP auth surface.
func NewService(authService *auth.Service, logger auth.Logger) (*Service, error) {
	if authService == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "authapi.new", "auth service is required")
	}
	if logger == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "authapi.new", "logger is required")
	}
	return &Service{auth: authService, logger: logger}, nil
}

// Register mounts the auth routes on the group.
func (s *Service) Register(router *gin.RouterGroup) {
	router.POST("/signup", s.handleSignup)
	router.POST("/login", s.handleLogin)
	router.POST("/verify-2fa", s.handleVerifyTwoFA)
	router.POST("/verify-token", s.handleVerifyToken)
	router.POST("/refresh-token", s.handleRefreshToken)
	router.POST("/logout", s.handleLogout)
	router.DELETE("/delete-account", s.handleDeleteAccount)
}

type signupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Requires2FA bool   `json:"requires2FA"`
}

func (s *Service) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedBody)
		return
	}

	err := s.auth.SignUp(c.Request.Context(), req.Email, req.Password, req.Requires2FA)
	switch {
	case err == nil:
		httptransport.RespondMessage(c, http.StatusCreated, "User created successfully!")
	case errors.Is(err, model.ErrInvalidEmail), errors.Is(err, model.ErrInvalidPassword):
		httptransport.RespondError(c, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, userstore.ErrUserExists):
		httptransport.RespondError(c, http.StatusConflict, msgUserExists)
	default:
		s.unexpected(c, "signup", err)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type twoFactorAuthResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}

func (s *Service) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedBody)
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrInvalidEmail), errors.Is(err, model.ErrInvalidPassword):
		httptransport.RespondError(c, http.StatusBadRequest, msgInvalidCredentials)
		return
	case errors.Is(err, auth.ErrIncorrectCredentials):
		httptransport.RespondError(c, http.StatusUnauthorized, msgIncorrectCredentials)
		return
	default:
		s.unexpected(c, "login", err)
		return
	}

	if result.TwoFARequired {
		c.JSON(http.StatusPartialContent, twoFactorAuthResponse{
			Message:        "2FA required",
			LoginAttemptID: result.AttemptID.Raw(),
		})
		return
	}

	http.SetCookie(c.Writer, s.auth.Cookie(result.Token))
	c.Status(http.StatusOK)
}

type verifyTwoFARequest struct {
	Email          string `json:"email" binding:"required"`
	LoginAttemptID string `json:"loginAttemptId" binding:"required"`
	TwoFACode      string `json:"2FACode" binding:"required"`
}

func (s *Service) handleVerifyTwoFA(c *gin.Context) {
	var req verifyTwoFARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedBody)
		return
	}

	token, err := s.auth.VerifyTwoFA(c.Request.Context(), req.Email, req.LoginAttemptID, req.TwoFACode)
	switch {
	case err == nil:
		http.SetCookie(c.Writer, s.auth.Cookie(token))
		c.Status(http.StatusOK)
	case errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrInvalidLoginAttemptID),
		errors.Is(err, model.ErrInvalidTwoFACode):
		httptransport.RespondError(c, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, auth.ErrIncorrectCredentials):
		httptransport.RespondError(c, http.StatusUnauthorized, msgIncorrectCredentials)
	default:
		s.unexpected(c, "verify-2fa", err)
	}
}

type verifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (s *Service) handleVerifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedBody)
		return
	}

	_, decision := s.auth.VerifyToken(c.Request.Context(), req.Token)
	switch decision {
	case auth.DecisionValid:
		httptransport.RespondMessage(c, http.StatusOK, "Token is valid")
	case auth.DecisionMalformed:
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedToken)
	case auth.DecisionInvalid:
		httptransport.RespondError(c, http.StatusUnauthorized, msgInvalidToken)
	default:
		httptransport.RespondError(c, http.StatusInternalServerError, msgUnexpected)
	}
}

func (s *Service) handleRefreshToken(c *gin.Context) {
	raw, err := c.Cookie(s.auth.CookieName())
	if err != nil || raw == "" {
		httptransport.RespondError(c, http.StatusBadRequest, msgMissingToken)
		return
	}

	token, decision, err := s.auth.Refresh(c.Request.Context(), raw)
	switch decision {
	case auth.DecisionValid:
		http.SetCookie(c.Writer, s.auth.Cookie(token))
		c.Status(http.StatusNoContent)
	case auth.DecisionInvalid, auth.DecisionMalformed:
		httptransport.RespondError(c, http.StatusUnauthorized, msgInvalidToken)
	default:
		s.unexpected(c, "refresh-token", err)
	}
}

func (s *Service) handleLogout(c *gin.Context) {
	raw, err := c.Cookie(s.auth.CookieName())
	if err != nil {
		raw = ""
	}

	logoutErr := s.auth.Logout(c.Request.Context(), raw)
	switch {
	case logoutErr == nil:
		http.SetCookie(c.Writer, s.auth.ClearingCookie())
		c.Status(http.StatusOK)
	case errors.Is(logoutErr, auth.ErrMissingToken):
		httptransport.RespondError(c, http.StatusBadRequest, msgMissingToken)
	case errors.Is(logoutErr, auth.ErrInvalidToken):
		httptransport.RespondError(c, http.StatusUnauthorized, msgInvalidToken)
	default:
		s.unexpected(c, "logout", logoutErr)
	}
}

type deleteAccountRequest struct {
	Email string `json:"email" binding:"required"`
}

func (s *Service) handleDeleteAccount(c *gin.Context) {
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httptransport.RespondError(c, http.StatusUnprocessableEntity, msgMalformedBody)
		return
	}

	err := s.auth.DeleteAccount(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		httptransport.RespondMessage(c, http.StatusOK, "Account deleted successfully!")
	case errors.Is(err, model.ErrInvalidEmail):
		httptransport.RespondError(c, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, userstore.ErrUserNotFound):
		httptransport.RespondError(c, http.StatusNotFound, msgUserNotFound)
	default:
		s.unexpected(c, "delete-account", err)
	}
}

func (s *Service) unexpected(c *gin.Context, op string, err error) {
	s.logger.Error("%s failed: %v", op, err)
	httptransport.RespondError(c, http.StatusInternalServerError, msgUnexpected)
}

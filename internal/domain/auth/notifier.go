package auth

import (
	"context"

	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/model"
)

// Notifier delivers a second-factor challenge to the account holder through
// an out-of-band channel.
type Notifier interface {
	SendTwoFACode(ctx context.Context, email model.Email, attemptID model.LoginAttemptID, code model.TwoFACode) error
}

// LogNotifier is a development stand-in for a real mail or SMS gateway. It
// deliberately logs the raw code so local flows can be completed by hand;
// never wire it in production.
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier builds a notifier writing to the given logger.
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendTwoFACode(_ context.Context, email model.Email, attemptID model.LoginAttemptID, code model.TwoFACode) error {
	n.logger.Info("2FA code dispatched to %s (attempt %s): %s", email.Raw(), attemptID.Raw(), code.Raw())
	return nil
}

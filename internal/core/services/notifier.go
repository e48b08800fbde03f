package services

import (
	"context"
	"log/slog"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
)

// logResetNotifier logs reset tokens instead of emailing them. It stands
// in until a mail delivery backend is wired up; the interface keeps the
// auth flow indifferent to the transport.
type logResetNotifier struct {
	logger *slog.Logger
}

// NewLogResetNotifier creates a notifier that records reset issuance via
// the given logger.
func NewLogResetNotifier(logger *slog.Logger) portssvc.ResetNotifier {
	return &logResetNotifier{logger: logger}
}

func (n *logResetNotifier) NotifyResetToken(ctx context.Context, user *domain.User, token string) error {
	// The raw token is never logged; its presence in the store is enough
	// to correlate with delivery failures.
	n.logger.InfoContext(ctx, "password reset token issued",
		slog.String("user_id", user.UserID),
		slog.String("email", user.Email),
	)
	return nil
}

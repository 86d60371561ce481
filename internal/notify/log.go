package notify

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LogNotifier logs instead of sending. Used in development when mail
// delivery is suppressed.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendOrderConfirmation(ctx context.Context, email string, orderID uint, total decimal.Decimal, name string) error {
	n.logger.Info("email suppressed: order confirmation",
		zap.String("to", email),
		zap.Uint("order_id", orderID),
		zap.String("total", total.StringFixed(2)),
	)
	return nil
}

func (n *LogNotifier) SendPasswordReset(ctx context.Context, email, resetURL, name string) error {
	n.logger.Info("email suppressed: password reset",
		zap.String("to", email),
		zap.String("reset_url", resetURL),
	)
	return nil
}

func (n *LogNotifier) SendConsultantStatus(ctx context.Context, email, status string) error {
	n.logger.Info("email suppressed: consultant status",
		zap.String("to", email),
		zap.String("status", status),
	)
	return nil
}

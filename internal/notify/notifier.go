package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

// Notifier delivers transactional emails. All calls are best effort:
// callers log and continue on error, never roll back the primary write.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, email string, orderID uint, total decimal.Decimal, name string) error
	SendPasswordReset(ctx context.Context, email, resetURL, name string) error
	SendConsultantStatus(ctx context.Context, email, status string) error
}

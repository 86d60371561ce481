package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const methodCOD = "cod"

// Processor runs the payment step of a checkout against the configured
// gateway. Cash on delivery is settled locally and never reaches a gateway.
type Processor struct {
	registry *Registry
	kind     Kind
	currency string
	logger   *zap.Logger
}

func NewProcessor(registry *Registry, kind Kind, currency string, logger *zap.Logger) *Processor {
	return &Processor{
		registry: registry,
		kind:     kind,
		currency: currency,
		logger:   logger,
	}
}

func (p *Processor) ProcessOrderPayment(ctx context.Context, orderID uint, amount decimal.Decimal, customerEmail, method string) (Result, error) {
	if method == methodCOD {
		return Result{
			Success:       true,
			TransactionID: fmt.Sprintf("COD_%d", orderID),
			Message:       "Cash on Delivery - No payment processing required",
			Data: map[string]any{
				"payment_method": methodCOD,
				"order_id":       orderID,
				"amount":         amount.String(),
			},
			Timestamp: time.Now().UTC(),
		}, nil
	}

	gateway := p.registry.Resolve(p.kind)
	result, err := gateway.ProcessPayment(ctx, amount, p.currency, Metadata{
		OrderID:       orderID,
		CustomerEmail: customerEmail,
		PaymentMethod: method,
	})
	if err != nil {
		return Result{}, fmt.Errorf("process payment for order %d: %w", orderID, err)
	}

	if result.Success {
		p.logger.Info("payment successful",
			zap.Uint("order_id", orderID),
			zap.String("transaction_id", result.TransactionID),
		)
	} else {
		p.logger.Error("payment failed",
			zap.Uint("order_id", orderID),
			zap.String("message", result.Message),
		)
	}

	return result, nil
}

// Verify checks a previously returned transaction id with the gateway.
func (p *Processor) Verify(ctx context.Context, transactionID string) (Result, error) {
	return p.registry.Resolve(p.kind).VerifyPayment(ctx, transactionID)
}

// Refund issues a refund through the gateway. Nothing in the order flow
// calls this yet; the Refunded payment status has no trigger path.
func (p *Processor) Refund(ctx context.Context, transactionID string, amount decimal.Decimal) (Result, error) {
	return p.registry.Resolve(p.kind).RefundPayment(ctx, transactionID, amount)
}

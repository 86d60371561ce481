package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// stubGateway stands in for providers that are not integrated yet. Every
// call returns a failed Result so the checkout failure path stays uniform
// instead of panicking on an unimplemented provider.
type stubGateway struct {
	name string
}

func NewStripeGateway() Gateway   { return &stubGateway{name: "Stripe"} }
func NewJazzCashGateway() Gateway { return &stubGateway{name: "JazzCash"} }

func (g *stubGateway) notImplemented() Result {
	return Result{
		Success:   false,
		Message:   g.name + " integration not yet implemented",
		Timestamp: time.Now().UTC(),
	}
}

func (g *stubGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Result, error) {
	return g.notImplemented(), nil
}

func (g *stubGateway) VerifyPayment(ctx context.Context, transactionID string) (Result, error) {
	return g.notImplemented(), nil
}

func (g *stubGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Result, error) {
	return g.notImplemented(), nil
}

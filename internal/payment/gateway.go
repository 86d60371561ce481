package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a gateway call. Business failures (declined
// payment, unknown transaction) are reported with Success=false and a
// human-readable Message; the error return of gateway methods is reserved
// for programming or configuration faults.
type Result struct {
	Success       bool
	TransactionID string
	Message       string
	Data          map[string]any
	Timestamp     time.Time
}

// Metadata carries checkout context into the gateway call.
type Metadata struct {
	OrderID       uint
	CustomerEmail string
	PaymentMethod string
}

type Gateway interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Result, error)
	VerifyPayment(ctx context.Context, transactionID string) (Result, error)
	RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Result, error)
}

// Kind identifies a configured gateway implementation.
type Kind string

const (
	KindMock     Kind = "mock"
	KindStripe   Kind = "stripe"
	KindJazzCash Kind = "jazzcash"
)

// Registry maps gateway kinds to implementations. Resolved once at startup;
// unknown kinds fall back to the mock gateway.
type Registry struct {
	gateways map[Kind]Gateway
	fallback Gateway
}

func NewRegistry() *Registry {
	return &Registry{gateways: make(map[Kind]Gateway)}
}

func (r *Registry) Register(kind Kind, g Gateway) {
	r.gateways[kind] = g
	if kind == KindMock {
		r.fallback = g
	}
}

func (r *Registry) Resolve(kind Kind) Gateway {
	if g, ok := r.gateways[kind]; ok {
		return g
	}
	return r.fallback
}

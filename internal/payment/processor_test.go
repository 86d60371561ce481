package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingGateway counts calls so tests can assert a gateway was or was
// not reached.
type recordingGateway struct {
	calls  int
	result Result
}

func (g *recordingGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Result, error) {
	g.calls++
	return g.result, nil
}

func (g *recordingGateway) VerifyPayment(ctx context.Context, transactionID string) (Result, error) {
	g.calls++
	return g.result, nil
}

func (g *recordingGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Result, error) {
	g.calls++
	return g.result, nil
}

func TestProcessorCashOnDeliverySkipsGateway(t *testing.T) {
	gw := &recordingGateway{}
	registry := NewRegistry()
	registry.Register(KindMock, gw)

	p := NewProcessor(registry, KindMock, "PKR", zap.NewNop())

	result, err := p.ProcessOrderPayment(context.Background(), 42, decimal.NewFromInt(100), "buyer@example.com", "cod")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "COD_42", result.TransactionID)
	assert.Zero(t, gw.calls, "cod must never reach a gateway")
}

func TestProcessorDelegatesToConfiguredGateway(t *testing.T) {
	gw := &recordingGateway{result: Result{Success: true, TransactionID: "MOCK_TEST", Timestamp: time.Now()}}
	registry := NewRegistry()
	registry.Register(KindMock, gw)

	p := NewProcessor(registry, KindMock, "PKR", zap.NewNop())

	result, err := p.ProcessOrderPayment(context.Background(), 1, decimal.NewFromInt(10), "buyer@example.com", "card")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "MOCK_TEST", result.TransactionID)
	assert.Equal(t, 1, gw.calls)
}

func TestProcessorPropagatesDecline(t *testing.T) {
	gw := &recordingGateway{result: Result{Success: false, Message: "Insufficient funds"}}
	registry := NewRegistry()
	registry.Register(KindMock, gw)

	p := NewProcessor(registry, KindMock, "PKR", zap.NewNop())

	result, err := p.ProcessOrderPayment(context.Background(), 1, decimal.NewFromInt(10), "buyer@example.com", "card")
	require.NoError(t, err, "a decline is a result, not an error")
	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient funds", result.Message)
}

func TestRegistryFallsBackToMock(t *testing.T) {
	mock := &recordingGateway{result: Result{Success: true}}
	registry := NewRegistry()
	registry.Register(KindMock, mock)
	registry.Register(KindStripe, NewStripeGateway())

	assert.Same(t, mock, registry.Resolve(KindMock))
	assert.Same(t, mock, registry.Resolve(Kind("paypal")), "unknown kinds resolve to mock")
	assert.NotSame(t, mock, registry.Resolve(KindStripe))
}

package payment

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMockGatewayProcessPayment(t *testing.T) {
	g := NewMockGateway(zap.NewNop())

	result, err := g.ProcessPayment(context.Background(), decimal.NewFromFloat(49.99), "PKR", Metadata{
		OrderID:       7,
		CustomerEmail: "farmer@example.com",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.TransactionID, "MOCK_"))

	// suffix is 8 random bytes hex encoded, upper case
	suffix := strings.TrimPrefix(result.TransactionID, "MOCK_")
	assert.Len(t, suffix, 16)
	_, err = hex.DecodeString(strings.ToLower(suffix))
	assert.NoError(t, err)
	assert.Equal(t, strings.ToUpper(suffix), suffix)

	assert.Equal(t, "49.99", result.Data["amount"])
	assert.Equal(t, "PKR", result.Data["currency"])
}

func TestMockGatewayTokensAreUnique(t *testing.T) {
	g := NewMockGateway(zap.NewNop())

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		result, err := g.ProcessPayment(context.Background(), decimal.NewFromInt(1), "PKR", Metadata{})
		require.NoError(t, err)
		assert.False(t, seen[result.TransactionID], "duplicate transaction id %s", result.TransactionID)
		seen[result.TransactionID] = true
	}
}

func TestMockGatewayVerifyPayment(t *testing.T) {
	g := NewMockGateway(zap.NewNop())

	result, err := g.VerifyPayment(context.Background(), "MOCK_ABCDEF0123456789")
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = g.VerifyPayment(context.Background(), "ch_stripe_123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid transaction ID", result.Message)
}

func TestMockGatewayRefundPayment(t *testing.T) {
	g := NewMockGateway(zap.NewNop())

	result, err := g.RefundPayment(context.Background(), "MOCK_ABCDEF0123456789", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.TransactionID, "REFUND_"))
	assert.Equal(t, "MOCK_ABCDEF0123456789", result.Data["original_transaction"])

	result, err = g.RefundPayment(context.Background(), "COD_5", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Cannot refund: Invalid transaction ID", result.Message)
}

func TestStubGatewaysAlwaysDecline(t *testing.T) {
	for _, g := range []Gateway{NewStripeGateway(), NewJazzCashGateway()} {
		result, err := g.ProcessPayment(context.Background(), decimal.NewFromInt(5), "PKR", Metadata{})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "not yet implemented")
	}
}

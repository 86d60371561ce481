package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	mockPrefix   = "MOCK_"
	refundPrefix = "REFUND_"
)

// MockGateway simulates a payment provider for development and tests.
// Every ProcessPayment call succeeds.
type MockGateway struct {
	logger *zap.Logger
}

func NewMockGateway(logger *zap.Logger) *MockGateway {
	return &MockGateway{logger: logger}
}

func mockToken(prefix string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	return prefix + strings.ToUpper(hex.EncodeToString(buf))
}

func (g *MockGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, meta Metadata) (Result, error) {
	transactionID := mockToken(mockPrefix)

	g.logger.Info("mock payment processed",
		zap.String("amount", amount.String()),
		zap.String("currency", currency),
		zap.String("transaction_id", transactionID),
	)

	return Result{
		Success:       true,
		TransactionID: transactionID,
		Message:       "Payment processed successfully (Mock)",
		Data: map[string]any{
			"amount":         amount.String(),
			"currency":       currency,
			"gateway":        "mock",
			"customer_email": meta.CustomerEmail,
			"order_id":       meta.OrderID,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}

func (g *MockGateway) VerifyPayment(ctx context.Context, transactionID string) (Result, error) {
	if strings.HasPrefix(transactionID, mockPrefix) {
		return Result{
			Success:       true,
			TransactionID: transactionID,
			Message:       "Payment verified (Mock)",
			Data:          map[string]any{"status": "completed"},
			Timestamp:     time.Now().UTC(),
		}, nil
	}
	return Result{
		Success:   false,
		Message:   "Invalid transaction ID",
		Timestamp: time.Now().UTC(),
	}, nil
}

func (g *MockGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (Result, error) {
	if strings.HasPrefix(transactionID, mockPrefix) {
		return Result{
			Success:       true,
			TransactionID: mockToken(refundPrefix),
			Message:       "Refund processed successfully (Mock)",
			Data: map[string]any{
				"original_transaction": transactionID,
				"amount":               amount.String(),
			},
			Timestamp: time.Now().UTC(),
		}, nil
	}
	return Result{
		Success:   false,
		Message:   "Cannot refund: Invalid transaction ID",
		Timestamp: time.Now().UTC(),
	}, nil
}

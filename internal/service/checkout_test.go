package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/payment"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

// decliningGateway refuses every charge with a fixed message.
type decliningGateway struct{}

func (decliningGateway) ProcessPayment(ctx context.Context, amount decimal.Decimal, currency string, meta payment.Metadata) (payment.Result, error) {
	return payment.Result{Success: false, Message: "Insufficient funds"}, nil
}

func (decliningGateway) VerifyPayment(ctx context.Context, transactionID string) (payment.Result, error) {
	return payment.Result{Success: false}, nil
}

func (decliningGateway) RefundPayment(ctx context.Context, transactionID string, amount decimal.Decimal) (payment.Result, error) {
	return payment.Result{Success: false}, nil
}

func newCheckoutFixture(t *testing.T, gateway payment.Gateway) (*gorm.DB, CheckoutService, CartService) {
	t.Helper()

	db := newTestDB(t)
	logger := zap.NewNop()

	registry := payment.NewRegistry()
	registry.Register(payment.KindMock, gateway)
	processor := payment.NewProcessor(registry, payment.KindMock, "PKR", logger)

	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	checkout := NewCheckoutService(db, cartRepo, orderRepo, productRepo, userRepo, processor, notify.NewLogNotifier(logger), logger)
	cart := NewCartService(cartRepo, productRepo)
	return db, checkout, cart
}

func TestCheckoutSuccess(t *testing.T) {
	ctx := context.Background()
	db, checkout, cart := newCheckoutFixture(t, payment.NewMockGateway(zap.NewNop()))

	user := seedUser(t, db, "buyer@example.com")
	seeds := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	oil := seedProduct(t, db, "Neem Oil", "2.50", 20)

	require.NoError(t, cart.AddToCart(ctx, user.ID, seeds.ID, 2))
	require.NoError(t, cart.AddToCart(ctx, user.ID, oil.ID, 2))

	resp, err := checkout.Checkout(ctx, user.ID, "12 Farm Lane", "card")
	require.NoError(t, err)

	assert.Equal(t, dto.CheckoutConfirmed, resp.Status)
	assert.True(t, strings.HasPrefix(resp.TransactionID, "MOCK_"))

	var order model.Order
	require.NoError(t, db.First(&order, resp.OrderID).Error)
	assert.Equal(t, model.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, model.OrderConfirmed, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(25.00)), "got %s", order.TotalAmount)
	assert.Equal(t, resp.TransactionID, order.PaymentTransactionID)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)

	// paid checkout consumes the cart
	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestCheckoutSnapshotsUnitPrice(t *testing.T) {
	ctx := context.Background()
	db, checkout, cart := newCheckoutFixture(t, payment.NewMockGateway(zap.NewNop()))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)

	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 1))

	resp, err := checkout.Checkout(ctx, user.ID, "12 Farm Lane", "card")
	require.NoError(t, err)

	// a later price change must not touch the recorded order
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.NewFromInt(999)).Error)

	var item model.OrderItem
	require.NoError(t, db.Where("order_id = ?", resp.OrderID).First(&item).Error)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromFloat(10.00)), "got %s", item.UnitPrice)
}

func TestCheckoutDeclinedPaymentKeepsCart(t *testing.T) {
	ctx := context.Background()
	db, checkout, cart := newCheckoutFixture(t, decliningGateway{})

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 3))

	resp, err := checkout.Checkout(ctx, user.ID, "12 Farm Lane", "card")
	require.NoError(t, err, "a decline is a recorded outcome, not an error")

	assert.Equal(t, dto.CheckoutFailed, resp.Status)
	assert.Empty(t, resp.TransactionID)
	assert.Contains(t, resp.Message, "Insufficient funds")

	var order model.Order
	require.NoError(t, db.First(&order, resp.OrderID).Error)
	assert.Equal(t, model.PaymentFailed, order.PaymentStatus)
	assert.Equal(t, model.OrderPending, order.Status)

	// cart survives so the user can retry
	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount)
}

func TestCheckoutCashOnDelivery(t *testing.T) {
	ctx := context.Background()
	db, checkout, cart := newCheckoutFixture(t, decliningGateway{})

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 1))

	// cod succeeds even though the configured gateway declines everything
	resp, err := checkout.Checkout(ctx, user.ID, "12 Farm Lane", "COD")
	require.NoError(t, err)

	assert.Equal(t, dto.CheckoutConfirmed, resp.Status)
	assert.Equal(t, fmt.Sprintf("COD_%d", resp.OrderID), resp.TransactionID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	db, checkout, _ := newCheckoutFixture(t, payment.NewMockGateway(zap.NewNop()))

	user := seedUser(t, db, "buyer@example.com")

	_, err := checkout.Checkout(ctx, user.ID, "12 Farm Lane", "card")
	assert.ErrorIs(t, err, ErrCartEmpty)

	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount, "no order row may exist for an empty cart")
}

func TestCheckoutRequiresAddressAndMethod(t *testing.T) {
	ctx := context.Background()
	db, checkout, cart := newCheckoutFixture(t, payment.NewMockGateway(zap.NewNop()))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 1))

	_, err := checkout.Checkout(ctx, user.ID, "  ", "card")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = checkout.Checkout(ctx, user.ID, "12 Farm Lane", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

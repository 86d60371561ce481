package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/notify"
	"github.com/Aijazali515/AgriFarma/internal/payment"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

// CheckoutService converts a user's cart into an order and runs the
// payment attempt. It is the only code path that mutates an order's
// payment_status and status, and it always changes them together.
type CheckoutService interface {
	Checkout(ctx context.Context, userID uint, shippingAddress, paymentMethod string) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db        *gorm.DB
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	processor *payment.Processor
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	processor *payment.Processor,
	notifier notify.Notifier,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		db:        db,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		products:  products,
		users:     users,
		processor: processor,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID uint, shippingAddress, paymentMethod string) (*dto.CheckoutResponse, error) {
	shippingAddress = strings.TrimSpace(shippingAddress)
	paymentMethod = strings.ToLower(strings.TrimSpace(paymentMethod))
	if shippingAddress == "" || paymentMethod == "" {
		return nil, fmt.Errorf("%w: shipping address and payment method are required", ErrInvalidInput)
	}

	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	productIDs := make([]uint, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := s.products.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	priceByID := make(map[uint]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}
	for _, item := range items {
		if _, ok := priceByID[item.ProductID]; !ok {
			return nil, fmt.Errorf("cart references missing product %d", item.ProductID)
		}
	}

	order := &model.Order{
		UserID:          userID,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   model.PaymentPending,
		Status:          model.OrderPending,
	}

	var result payment.Result
	// Everything from order creation through the cart mutation commits as
	// one unit: a failure mid-flow leaves no partial order behind.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		total := decimal.Zero
		orderItems := make([]*model.OrderItem, len(items))
		for i, item := range items {
			// unit price is snapshotted now; later product edits must not
			// touch historical orders
			unitPrice := priceByID[item.ProductID]
			orderItems[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
			}
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}
		order.TotalAmount = total

		result, err = s.processor.ProcessOrderPayment(ctx, order.ID, total, user.Email, paymentMethod)
		if err != nil {
			// gateway misconfiguration is fatal; roll everything back
			return err
		}

		if result.Success {
			order.PaymentStatus = model.PaymentPaid
			order.PaymentTransactionID = result.TransactionID
			order.Status = model.OrderConfirmed
			if err := s.orderRepo.UpdatePaymentOutcome(ctx, tx, order); err != nil {
				return fmt.Errorf("record payment outcome: %w", err)
			}
			// cart moves into the order: paid checkout consumes it
			if err := s.cartRepo.DeleteByUser(ctx, tx, userID); err != nil {
				return fmt.Errorf("clear cart: %w", err)
			}
			return nil
		}

		// declined payment still commits: the failed order is recorded and
		// the cart stays intact so the user can retry
		order.PaymentStatus = model.PaymentFailed
		order.Status = model.OrderPending
		return s.orderRepo.UpdatePaymentOutcome(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}

	if !result.Success {
		return &dto.CheckoutResponse{
			OrderID: order.ID,
			Status:  dto.CheckoutFailed,
			Message: fmt.Sprintf("Payment failed: %s", result.Message),
		}, nil
	}

	s.sendConfirmation(ctx, user, order)

	return &dto.CheckoutResponse{
		OrderID:       order.ID,
		Status:        dto.CheckoutConfirmed,
		TransactionID: result.TransactionID,
		Message:       fmt.Sprintf("Order placed. Total: %s", order.TotalAmount.StringFixed(2)),
	}, nil
}

// sendConfirmation is best effort; a notification failure never rolls back
// a placed order.
func (s *checkoutServiceImpl) sendConfirmation(ctx context.Context, user *model.User, order *model.Order) {
	name := ""
	if profile, err := s.users.FindProfile(ctx, user.ID); err == nil {
		name = profile.Name
	}
	if err := s.notifier.SendOrderConfirmation(ctx, user.Email, order.ID, order.TotalAmount, name); err != nil {
		s.logger.Warn("order confirmation email failed",
			zap.Uint("order_id", order.ID),
			zap.Error(err),
		)
	}
}

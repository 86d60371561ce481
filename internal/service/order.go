package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

type OrderPage struct {
	Orders  []model.Order `json:"orders"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

type OrderDetail struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

type OrderService interface {
	History(ctx context.Context, userID uint, from, to *time.Time, page int) (*OrderPage, error)
	Get(ctx context.Context, actorID uint, actorRole string, orderID uint) (*OrderDetail, error)
}

type orderServiceImpl struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderServiceImpl{orders: orders}
}

func (s *orderServiceImpl) History(ctx context.Context, userID uint, from, to *time.Time, page int) (*OrderPage, error) {
	const perPage = 20
	orders, total, err := s.orders.ListByUser(ctx, userID, from, to, page, perPage)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &OrderPage{Orders: orders, Total: total, Page: page, PerPage: perPage}, nil
}

// Get returns an order with its lines; only the owner or an admin may see it.
func (s *orderServiceImpl) Get(ctx context.Context, actorID uint, actorRole string, orderID uint) (*OrderDetail, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID != actorID && actorRole != model.RoleAdmin {
		return nil, ErrForbidden
	}

	items, err := s.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *order, Items: items}, nil
}

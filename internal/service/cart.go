package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

type CartService interface {
	AddToCart(ctx context.Context, userID, productID uint, quantity int) error
	UpdateItem(ctx context.Context, userID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID uint) error
	ViewCart(ctx context.Context, userID uint) (*dto.CartResponse, error)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart is an upsert: adding a product already in the cart bumps its
// quantity instead of creating a second row.
func (s *cartServiceImpl) AddToCart(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}
	if product.Status != model.ProductActive {
		return fmt.Errorf("%w: product not available", ErrInvalidInput)
	}

	return s.cartRepo.Upsert(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateItem sets a cart line's quantity. Zero means remove the line.
func (s *cartServiceImpl) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrForbidden
	}

	if quantity == 0 {
		return s.cartRepo.Delete(ctx, itemID)
	}
	return s.cartRepo.SetQuantity(ctx, itemID, quantity)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.UpdateItem(ctx, userID, itemID, 0)
}

func (s *cartServiceImpl) ViewCart(ctx context.Context, userID uint) (*dto.CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	productIDs := make([]uint, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}
	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resp := &dto.CartResponse{Total: decimal.Zero}
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		resp.Items = append(resp.Items, dto.CartLine{
			ItemID:      item.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return resp, nil
}

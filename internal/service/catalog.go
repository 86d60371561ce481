package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

// ProductPage is one page of the public shop listing.
type ProductPage struct {
	Products []model.Product `json:"products"`
	Featured []model.Product `json:"featured"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PerPage  int             `json:"per_page"`
}

// ProductDetail bundles a product with its approved reviews and related
// items from the same category.
type ProductDetail struct {
	Product model.Product   `json:"product"`
	Reviews []model.Review  `json:"reviews"`
	Related []model.Product `json:"related"`
}

type CatalogService interface {
	List(ctx context.Context, q repository.ProductQuery) (*ProductPage, error)
	Detail(ctx context.Context, productID uint) (*ProductDetail, error)
	Create(ctx context.Context, sellerID uint, req dto.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, actorID uint, actorRole string, productID uint, req dto.ProductRequest) error
	Delete(ctx context.Context, actorID uint, actorRole string, productID uint) error
	SubmitReview(ctx context.Context, userID, productID uint, req dto.ReviewRequest) error
}

type catalogServiceImpl struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

func NewCatalogService(products repository.ProductRepository, reviews repository.ReviewRepository) CatalogService {
	return &catalogServiceImpl{products: products, reviews: reviews}
}

func (s *catalogServiceImpl) List(ctx context.Context, q repository.ProductQuery) (*ProductPage, error) {
	if q.PerPage <= 0 {
		q.PerPage = 12
	}
	if q.Page < 1 {
		q.Page = 1
	}
	products, total, err := s.products.ListActive(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	featured := make([]model.Product, 0, 6)
	for _, p := range products {
		if p.Featured && len(featured) < 6 {
			featured = append(featured, p)
		}
	}

	return &ProductPage{
		Products: products,
		Featured: featured,
		Total:    total,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}, nil
}

func (s *catalogServiceImpl) Detail(ctx context.Context, productID uint) (*ProductDetail, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if product.Status != model.ProductActive {
		return nil, ErrNotFound
	}

	reviews, err := s.reviews.ListApprovedByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	related, err := s.products.Related(ctx, product.Category, productID, 4)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{Product: *product, Reviews: reviews, Related: related}, nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, sellerID uint, req dto.ProductRequest) (*model.Product, error) {
	if req.Name == "" || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: name required and price must not be negative", ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = model.ProductActive
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Inventory:   req.Inventory,
		SellerID:    sellerID,
		Status:      status,
		Featured:    req.Featured,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update edits the live product row. Historical order items keep their
// snapshotted unit price regardless of price changes here.
func (s *catalogServiceImpl) Update(ctx context.Context, actorID uint, actorRole string, productID uint, req dto.ProductRequest) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if product.SellerID != actorID && actorRole != model.RoleAdmin {
		return ErrForbidden
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Images = req.Images
	product.Inventory = req.Inventory
	product.Featured = req.Featured
	if req.Status != "" {
		product.Status = req.Status
	}
	return s.products.Update(ctx, product)
}

func (s *catalogServiceImpl) Delete(ctx context.Context, actorID uint, actorRole string, productID uint) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if product.SellerID != actorID && actorRole != model.RoleAdmin {
		return ErrForbidden
	}
	return s.products.Delete(ctx, productID)
}

// SubmitReview stores the review unapproved; it becomes visible once an
// admin approves it.
func (s *catalogServiceImpl) SubmitReview(ctx context.Context, userID, productID uint, req dto.ReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.reviews.Create(ctx, &model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Approved:  false,
	})
}

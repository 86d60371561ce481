package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

// ProductQuery narrows the active-product listing.
type ProductQuery struct {
	Category string
	Search   string
	Sort     string // name, price, new, featured
	Page     int
	PerPage  int
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID uint) (*model.Product, error)
	FindMany(ctx context.Context, productIDs []uint) ([]model.Product, error)
	ListActive(ctx context.Context, q ProductQuery) ([]model.Product, int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Product, error)
	Related(ctx context.Context, category string, excludeID uint, limit int) ([]model.Product, error)
	ListByStatus(ctx context.Context, status string) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	SetStatus(ctx context.Context, productID uint, status string) error
	Delete(ctx context.Context, productID uint) error
	Count(ctx context.Context) (int64, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error
	return products, err
}

func (r *productRepoImpl) ListActive(ctx context.Context, q ProductQuery) ([]model.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Product{}).Where("status = ?", model.ProductActive)
	if q.Category != "" {
		base = base.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		base = base.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Sort {
	case "new":
		base = base.Order("created_at DESC")
	case "price":
		base = base.Order("price ASC")
	case "featured":
		base = base.Order("featured DESC, name ASC")
	default:
		base = base.Order("name ASC")
	}

	if q.PerPage <= 0 {
		q.PerPage = 12
	}
	if q.Page < 1 {
		q.Page = 1
	}

	var products []model.Product
	err := base.Offset((q.Page - 1) * q.PerPage).Limit(q.PerPage).Find(&products).Error
	return products, total, err
}

func (r *productRepoImpl) ListRecent(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepoImpl) Related(ctx context.Context, category string, excludeID uint, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ? AND status = ?", category, excludeID, model.ProductActive).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepoImpl) ListByStatus(ctx context.Context, status string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepoImpl) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *productRepoImpl) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepoImpl) SetStatus(ctx context.Context, productID uint, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepoImpl) Delete(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

func (r *productRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

// SalesRow is one product's aggregated sales inside a date range.
type SalesRow struct {
	ProductID uint
	Name      string
	Units     int
	Revenue   decimal.Decimal
}

// LineItemRow is one order line joined with its order and product, used
// for the sales export.
type LineItemRow struct {
	OrderID       uint
	OrderDate     time.Time
	OrderStatus   string
	PaymentStatus string
	ProductID     uint
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// OrderQuery narrows report order listings.
type OrderQuery struct {
	Start         time.Time
	End           time.Time // exclusive
	Status        string
	CustomerEmail string
	Limit         int
}

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error
	UpdatePaymentOutcome(ctx context.Context, tx *gorm.DB, order *model.Order) error
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	GetOrderItems(ctx context.Context, orderID uint) ([]model.OrderItem, error)
	ListByUser(ctx context.Context, userID uint, from, to *time.Time, page, perPage int) ([]model.Order, int64, error)
	ListForReport(ctx context.Context, q OrderQuery) ([]model.Order, error)
	FindCreatedSince(ctx context.Context, since time.Time) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	SalesByProduct(ctx context.Context, start, end time.Time) ([]SalesRow, error)
	LineItems(ctx context.Context, start, end time.Time) ([]LineItemRow, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateOrderItems(ctx context.Context, tx *gorm.DB, items []*model.OrderItem) error {
	return tx.WithContext(ctx).Create(&items).Error
}

// UpdatePaymentOutcome writes the payment and order status columns
// together so they can never drift apart.
func (r *orderRepoImpl) UpdatePaymentOutcome(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"payment_status":         order.PaymentStatus,
			"payment_transaction_id": order.PaymentTransactionID,
			"status":                 order.Status,
			"total_amount":           order.TotalAmount,
		}).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepoImpl) GetOrderItems(ctx context.Context, orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID uint, from, to *time.Time, page, perPage int) ([]model.Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID)
	if from != nil {
		base = base.Where("created_at >= ?", *from)
	}
	if to != nil {
		base = base.Where("created_at < ?", *to)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if perPage <= 0 {
		perPage = 20
	}
	if page < 1 {
		page = 1
	}

	var orders []model.Order
	err := base.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepoImpl) ListForReport(ctx context.Context, q OrderQuery) ([]model.Order, error) {
	base := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("orders.created_at >= ? AND orders.created_at < ?", q.Start, q.End)
	if q.Status != "" {
		base = base.Where("orders.status = ?", q.Status)
	}
	if q.CustomerEmail != "" {
		base = base.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.email LIKE ?", "%"+q.CustomerEmail+"%")
	}
	if q.Limit <= 0 {
		q.Limit = 200
	}

	var orders []model.Order
	err := base.Order("orders.created_at DESC").Limit(q.Limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepoImpl) FindCreatedSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepoImpl) SalesByProduct(ctx context.Context, start, end time.Time) ([]SalesRow, error) {
	var rows []SalesRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`products.id AS product_id,
			products.name AS name,
			SUM(order_items.quantity) AS units,
			SUM(order_items.quantity * order_items.unit_price) AS revenue`).
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Group("products.id, products.name").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepoImpl) LineItems(ctx context.Context, start, end time.Time) ([]LineItemRow, error) {
	var rows []LineItemRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`orders.id AS order_id,
			orders.created_at AS order_date,
			orders.status AS order_status,
			orders.payment_status AS payment_status,
			order_items.product_id AS product_id,
			products.name AS product_name,
			order_items.quantity AS quantity,
			order_items.unit_price AS unit_price`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Order("orders.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepoImpl) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		N      int
	}
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("status, COUNT(id) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		status := row.Status
		if status == "" {
			status = "Unknown"
		}
		out[status] = row.N
	}
	return out, nil
}

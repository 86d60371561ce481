package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductActive   = "Active"
	ProductInactive = "Inactive"
)

const (
	OrderPending   = "Pending"
	OrderConfirmed = "Confirmed"
	OrderShipped   = "Shipped"
	OrderCancelled = "Cancelled"
)

const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentFailed   = "Failed"
	PaymentRefunded = "Refunded"
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:200;index;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category    string          `gorm:"size:64;index"`
	Images      string          `gorm:"type:text"` // comma-separated filenames
	Inventory   int             `gorm:"default:0;index"`
	SellerID    uint            `gorm:"index;not null"`
	Status      string          `gorm:"size:16;default:Active;index"` // Active, Inactive
	Featured    bool            `gorm:"default:false;index"`
	CreatedAt   time.Time
}

// ImageList splits the comma-joined filenames, dropping empty entries.
func (p *Product) ImageList() []string {
	var out []string
	for _, f := range strings.Split(p.Images, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Rating    int    `gorm:"not null"` // 1..5
	Comment   string `gorm:"type:text"`
	Approved  bool   `gorm:"default:false;index"`
	CreatedAt time.Time
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:uq_cart_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:uq_cart_user_product"`
	Quantity  int  `gorm:"not null;default:1"`
	AddedAt   time.Time
}

type Order struct {
	ID                   uint            `gorm:"primaryKey"`
	UserID               uint            `gorm:"index;not null"`
	ShippingAddress      string          `gorm:"size:256;not null"`
	PaymentMethod        string          `gorm:"size:64;not null"` // cod, card, wallet
	PaymentStatus        string          `gorm:"size:32;default:Pending;index"`
	PaymentTransactionID string          `gorm:"size:128"`
	Status               string          `gorm:"size:16;default:Pending;index"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt            time.Time

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"not null"`
	Quantity  int  `gorm:"not null;default:1"`
	// snapshot of the product price at order creation, never updated afterwards
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// LineTotal is quantity x unit price for this line.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

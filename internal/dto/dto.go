package dto

import "github.com/shopspring/decimal"

// ---- auth ----

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Profession     string `json:"profession"`
	ExpertiseLevel string `json:"expertise_level"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Profession     string `json:"profession"`
	ExpertiseLevel string `json:"expertise_level"`
}

// ---- shop ----

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Images      string          `json:"images"` // comma-separated filenames
	Inventory   int             `json:"inventory"`
	Status      string          `json:"status"`
	Featured    bool            `json:"featured"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartLine struct {
	ItemID      uint            `json:"item_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"` // cod, card, wallet
}

const (
	CheckoutConfirmed = "confirmed"
	CheckoutFailed    = "failed"
)

type CheckoutResponse struct {
	OrderID       uint   `json:"order_id"`
	Status        string `json:"status"` // confirmed or failed
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

// ---- forum / blog / consultancy ----

type ThreadRequest struct {
	Title      string `json:"title"`
	CategoryID *uint  `json:"category_id"`
}

type PostRequest struct {
	Content string `json:"content"`
}

type BlogPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Tags       string `json:"tags"`
	MediaFiles string `json:"media_files"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type ConsultantRequest struct {
	Category       string `json:"category"`
	ExpertiseLevel string `json:"expertise_level"`
	ContactEmail   string `json:"contact_email"`
}

type MessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
}

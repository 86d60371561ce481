package model

import "time"

var ConsultantCategories = []string{
	"soil",
	"irrigation",
	"crop_disease",
	"fertilizers",
	"market",
	"other",
}

const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

type Consultant struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index;not null"`

	Category       string `gorm:"size:64;not null"`
	ExpertiseLevel string `gorm:"size:32;not null"`
	ContactEmail   string `gorm:"size:120;not null"`
	ApprovalStatus string `gorm:"size:16;default:Pending;index"` // Pending, Approved, Rejected

	CreatedAt time.Time
}

func (c *Consultant) IsApproved() bool {
	return c.ApprovalStatus == ApprovalApproved
}

type Message struct {
	ID         uint   `gorm:"primaryKey"`
	SenderID   uint   `gorm:"index;not null"`
	ReceiverID uint   `gorm:"index;not null"`
	Subject    string `gorm:"size:200;not null"`
	Content    string `gorm:"type:text;not null"`
	Read       bool   `gorm:"default:false;not null"`
	CreatedAt  time.Time
}

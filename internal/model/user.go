package model

import "time"

const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleConsultant = "Consultant"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:256;not null"`
	Role         string `gorm:"size:32;default:User"` // Admin, User, Consultant
	IsActive     bool   `gorm:"default:true"`
	JoinDate     time.Time

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE"`
}

const (
	ProfessionFarmer     = "farmer"
	ProfessionAcademic   = "academic"
	ProfessionConsultant = "consultant"
	ProfessionOther      = "other"
)

const (
	ExpertiseExpert       = "expert"
	ExpertiseIntermediate = "intermediate"
	ExpertiseBeginner     = "beginner"
)

type Profile struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`

	Name    string `gorm:"size:120;not null"`
	Mobile  string `gorm:"size:20"`
	City    string `gorm:"size:64"`
	State   string `gorm:"size:64"`
	Country string `gorm:"size:64"`

	Profession     string `gorm:"size:32"` // one of the Profession constants
	ExpertiseLevel string `gorm:"size:32"` // one of the Expertise constants

	DisplayPicture string `gorm:"size:256"` // stored upload filename
	CreatedAt      time.Time
}

type PasswordResetToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Token     string `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"default:false;index"`
}

// Valid reports whether the token is unused and not expired.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

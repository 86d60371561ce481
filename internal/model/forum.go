package model

import "time"

type Category struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:120;uniqueIndex;not null"`
	ParentID *uint  `gorm:"index"`
}

type Thread struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:255;not null"`
	CategoryID *uint  `gorm:"index"`
	AuthorID   uint   `gorm:"index;not null"`
	CreatedAt  time.Time

	Posts []Post `gorm:"constraint:OnDelete:CASCADE"`
}

type Post struct {
	ID        uint   `gorm:"primaryKey"`
	ThreadID  uint   `gorm:"index;not null"`
	AuthorID  uint   `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// one like per user per post
type PostLike struct {
	ID        uint `gorm:"primaryKey"`
	PostID    uint `gorm:"not null;uniqueIndex:uq_post_user_like"`
	UserID    uint `gorm:"not null;uniqueIndex:uq_post_user_like"`
	CreatedAt time.Time
}

package model

import (
	"path/filepath"
	"strings"
	"time"
)

var BlogCategories = []string{
	"Success Stories",
	"Techniques",
	"Weather Tips",
	"Market Insights",
	"Soil Health",
	"Irrigation",
}

type BlogPost struct {
	ID         uint   `gorm:"primaryKey"`
	Title      string `gorm:"size:255;not null"`
	Content    string `gorm:"type:text;not null"`
	Category   string `gorm:"size:64;not null"`
	AuthorID   uint   `gorm:"index;not null"`
	Tags       string `gorm:"size:255"` // comma-separated tags
	MediaFiles string `gorm:"size:512"` // comma-separated filenames
	Approved   bool   `gorm:"default:true;index"`
	CreatedAt  time.Time

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE;foreignKey:BlogID"`
}

func (b *BlogPost) TagList() []string {
	var out []string
	for _, t := range strings.Split(b.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type MediaItem struct {
	Filename string `json:"filename"`
	Ext      string `json:"ext"`
	Kind     string `json:"kind"` // image, video, doc, other
}

var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".ogg": true}
	docExts   = map[string]bool{".pdf": true, ".ppt": true, ".pptx": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".csv": true}
)

// MediaKind classifies a filename by extension for rendering.
func MediaKind(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExts[ext]:
		return "image"
	case videoExts[ext]:
		return "video"
	case docExts[ext]:
		return "doc"
	default:
		return "other"
	}
}

// MediaItems returns structured metadata for the attached media files.
func (b *BlogPost) MediaItems() []MediaItem {
	var items []MediaItem
	for _, raw := range strings.Split(b.MediaFiles, ",") {
		fname := strings.TrimSpace(raw)
		if fname == "" {
			continue
		}
		items = append(items, MediaItem{
			Filename: fname,
			Ext:      strings.ToLower(filepath.Ext(fname)),
			Kind:     MediaKind(fname),
		})
	}
	return items
}

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	BlogID    uint   `gorm:"index;not null"`
	AuthorID  uint   `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	Approved  bool   `gorm:"default:true"`
	CreatedAt time.Time
}

// one like per user per blog post
type BlogLike struct {
	ID        uint `gorm:"primaryKey"`
	BlogID    uint `gorm:"not null;uniqueIndex:uq_blog_user_like"`
	UserID    uint `gorm:"not null;uniqueIndex:uq_blog_user_like"`
	CreatedAt time.Time
}

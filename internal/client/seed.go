package client

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Aijazali515/AgriFarma/internal/model"
)

var forumCategories = []string{
	"Crop Farming",
	"Livestock",
	"Soil & Fertilizers",
	"Irrigation",
	"Pest Control",
	"Market Prices",
	"Equipment & Tools",
}

// Seed fills an empty database with the admin account, a pair of demo
// users, the forum categories and a handful of demo products. Safe to
// run repeatedly.
func Seed(db *gorm.DB, adminEmail, adminPassword string, logger *zap.Logger) error {
	for _, name := range forumCategories {
		category := model.Category{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := model.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
		JoinDate:     time.Now().UTC(),
	}
	res := db.Where(model.User{Email: adminEmail}).FirstOrCreate(&admin)
	if res.Error != nil {
		return fmt.Errorf("seed admin: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		profile := model.Profile{UserID: admin.ID, Name: "Administrator"}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed admin profile: %w", err)
		}
		logger.Info("seeded admin account", zap.String("email", adminEmail))
	}

	demoUsers := []struct {
		email string
		name  string
	}{
		{"farmer@agrifarma.local", "Demo Farmer"},
		{"buyer@agrifarma.local", "Demo Buyer"},
	}
	for _, du := range demoUsers {
		user := model.User{
			Email:        du.email,
			PasswordHash: string(hash),
			Role:         model.RoleUser,
			IsActive:     true,
			JoinDate:     time.Now().UTC(),
		}
		res := db.Where(model.User{Email: du.email}).FirstOrCreate(&user)
		if res.Error != nil {
			return fmt.Errorf("seed user %q: %w", du.email, res.Error)
		}
		if res.RowsAffected > 0 {
			profile := model.Profile{UserID: user.ID, Name: du.name}
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("seed profile for %q: %w", du.email, err)
			}
		}
	}

	var productCount int64
	if err := db.Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return nil
	}

	demo := []model.Product{
		{Name: "Wheat Seeds (10kg)", Description: "High-yield certified wheat seed.", Price: decimal.NewFromFloat(12.50), Category: "seeds", Inventory: 120, SellerID: admin.ID, Status: model.ProductActive, Featured: true},
		{Name: "Urea Fertilizer (50kg)", Description: "Granular nitrogen fertilizer.", Price: decimal.NewFromFloat(34.00), Category: "fertilizers", Inventory: 60, SellerID: admin.ID, Status: model.ProductActive},
		{Name: "Drip Irrigation Kit", Description: "Covers a quarter acre plot.", Price: decimal.NewFromFloat(89.99), Category: "equipment", Inventory: 15, SellerID: admin.ID, Status: model.ProductActive, Featured: true},
		{Name: "Neem Oil Pesticide (1L)", Description: "Organic broad-spectrum pesticide.", Price: decimal.NewFromFloat(8.75), Category: "pesticides", Inventory: 4, SellerID: admin.ID, Status: model.ProductActive},
	}
	if err := db.Create(&demo).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	logger.Info("seeded demo products", zap.Int("count", len(demo)))
	return nil
}

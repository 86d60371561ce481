package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Aijazali515/AgriFarma/internal/client"
	"github.com/Aijazali515/AgriFarma/internal/model"
)

// newTestDB opens a fresh in-memory sqlite database per test. The shared
// cache keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, client.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
		JoinDate:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&model.Profile{UserID: user.ID, Name: "Test User"}).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string, inventory int) *model.Product {
	t.Helper()

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := &model.Product{
		Name:      name,
		Price:     p,
		Category:  "seeds",
		Inventory: inventory,
		SellerID:  1,
		Status:    model.ProductActive,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func TestAddToCartUpsertsQuantity(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cart := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)

	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 2))
	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 3))

	var items []model.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&items).Error)
	require.Len(t, items, 1, "same product must stay one row")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cart := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)

	assert.ErrorIs(t, cart.AddToCart(ctx, user.ID, product.ID, 0), ErrInvalidInput)
	assert.ErrorIs(t, cart.AddToCart(ctx, user.ID, 9999, 1), ErrNotFound)

	inactive := seedProduct(t, db, "Old Stock", "1.00", 0)
	require.NoError(t, db.Model(inactive).Update("status", model.ProductInactive).Error)
	assert.ErrorIs(t, cart.AddToCart(ctx, user.ID, inactive.ID, 1), ErrInvalidInput)
}

func TestUpdateItemZeroRemoves(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cart := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	require.NoError(t, cart.AddToCart(ctx, user.ID, product.ID, 2))

	var item model.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&item).Error)

	require.NoError(t, cart.UpdateItem(ctx, user.ID, item.ID, 0))

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateItemOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cart := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	require.NoError(t, cart.AddToCart(ctx, owner.ID, product.ID, 2))

	var item model.CartItem
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&item).Error)

	assert.ErrorIs(t, cart.UpdateItem(ctx, other.ID, item.ID, 5), ErrForbidden)
	assert.ErrorIs(t, cart.UpdateItem(ctx, owner.ID, item.ID, -1), ErrInvalidInput)
}

func TestViewCartTotals(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	cart := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	seeds := seedProduct(t, db, "Wheat Seeds", "10.50", 50)
	oil := seedProduct(t, db, "Neem Oil", "2.25", 20)

	require.NoError(t, cart.AddToCart(ctx, user.ID, seeds.ID, 2))
	require.NoError(t, cart.AddToCart(ctx, user.ID, oil.ID, 4))

	resp, err := cart.ViewCart(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(30.00)), "got %s", resp.Total)
}

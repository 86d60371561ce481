package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/dto"
	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func TestCatalogListHidesInactive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewReviewRepository(db))

	seedProduct(t, db, "Visible", "1.00", 10)
	hidden := seedProduct(t, db, "Hidden", "1.00", 10)
	require.NoError(t, db.Model(hidden).Update("status", model.ProductInactive).Error)

	page, err := svc.List(ctx, repository.ProductQuery{})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, "Visible", page.Products[0].Name)
	assert.Equal(t, int64(1), page.Total)
}

func TestCatalogDetail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewReviewRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	related := seedProduct(t, db, "Corn Seeds", "8.00", 30)

	// one approved, one pending review
	require.NoError(t, db.Create(&model.Review{ProductID: product.ID, UserID: user.ID, Rating: 5, Comment: "good", Approved: true}).Error)
	require.NoError(t, db.Create(&model.Review{ProductID: product.ID, UserID: user.ID, Rating: 1, Comment: "pending"}).Error)

	detail, err := svc.Detail(ctx, product.ID)
	require.NoError(t, err)

	require.Len(t, detail.Reviews, 1, "pending reviews stay hidden")
	assert.Equal(t, "good", detail.Reviews[0].Comment)
	require.Len(t, detail.Related, 1)
	assert.Equal(t, related.ID, detail.Related[0].ID)

	// inactive products 404 on the public detail page
	require.NoError(t, db.Model(product).Update("status", model.ProductInactive).Error)
	_, err = svc.Detail(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogCreateValidation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewReviewRepository(db))
	seller := seedUser(t, db, "seller@example.com")

	_, err := svc.Create(ctx, seller.ID, dto.ProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, seller.ID, dto.ProductRequest{Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	product, err := svc.Create(ctx, seller.ID, dto.ProductRequest{Name: "Hoe", Price: decimal.NewFromInt(15)})
	require.NoError(t, err)
	assert.Equal(t, model.ProductActive, product.Status, "status defaults to active")
	assert.Equal(t, seller.ID, product.SellerID)
}

func TestCatalogUpdateOwnership(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewReviewRepository(db))

	seller := seedUser(t, db, "seller@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	product, err := svc.Create(ctx, seller.ID, dto.ProductRequest{Name: "Hoe", Price: decimal.NewFromInt(15)})
	require.NoError(t, err)

	req := dto.ProductRequest{Name: "Steel Hoe", Price: decimal.NewFromInt(18)}
	assert.ErrorIs(t, svc.Update(ctx, stranger.ID, model.RoleUser, product.ID, req), ErrForbidden)
	require.NoError(t, svc.Update(ctx, seller.ID, model.RoleUser, product.ID, req))
	require.NoError(t, svc.Update(ctx, stranger.ID, model.RoleAdmin, product.ID, req), "admins may edit any product")

	assert.ErrorIs(t, svc.Delete(ctx, stranger.ID, model.RoleUser, product.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, seller.ID, model.RoleUser, product.ID))
}

func TestSubmitReviewValidation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewReviewRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)

	assert.ErrorIs(t, svc.SubmitReview(ctx, user.ID, product.ID, dto.ReviewRequest{Rating: 0}), ErrInvalidInput)
	assert.ErrorIs(t, svc.SubmitReview(ctx, user.ID, product.ID, dto.ReviewRequest{Rating: 6}), ErrInvalidInput)
	assert.ErrorIs(t, svc.SubmitReview(ctx, user.ID, 9999, dto.ReviewRequest{Rating: 4}), ErrNotFound)

	require.NoError(t, svc.SubmitReview(ctx, user.ID, product.ID, dto.ReviewRequest{Rating: 4, Comment: "solid"}))

	var review model.Review
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&review).Error)
	assert.False(t, review.Approved, "reviews start unapproved")
}

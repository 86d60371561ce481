package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aijazali515/AgriFarma/internal/model"
	"github.com/Aijazali515/AgriFarma/internal/repository"
)

func TestOrderHistoryFiltersByDate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)

	seedPaidOrder(t, db, user.ID, product, 1, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
	seedPaidOrder(t, db, user.ID, product, 1, time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))

	page, err := svc.History(ctx, user.ID, nil, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	page, err = svc.History(ctx, user.ID, &from, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	to := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	page, err = svc.History(ctx, user.ID, nil, &to, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestOrderGetOwnership(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	product := seedProduct(t, db, "Wheat Seeds", "10.00", 50)
	order := seedPaidOrder(t, db, owner.ID, product, 2, time.Now().UTC())

	detail, err := svc.Get(ctx, owner.ID, model.RoleUser, order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)

	_, err = svc.Get(ctx, other.ID, model.RoleUser, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// admins can inspect any order
	_, err = svc.Get(ctx, other.ID, model.RoleAdmin, order.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, owner.ID, model.RoleUser, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

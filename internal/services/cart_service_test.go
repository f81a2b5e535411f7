package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_MergesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := seedUser(t, db, "ada@example.com")
	item := seedItem(t, db, user.ID, "Sunglasses", 1000)

	first, err := svc.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := svc.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	// One row, quantity two. Never a duplicate.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored models.CartItem
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, 2, stored.Quantity)
}

func TestAddToCart_SeparateRowsPerItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := seedUser(t, db, "ada@example.com")
	shades := seedItem(t, db, user.ID, "Sunglasses", 1000)
	boots := seedItem(t, db, user.ID, "Boots", 2500)

	_, err := svc.AddToCart(user.ID, shades.ID)
	require.NoError(t, err)
	_, err = svc.AddToCart(user.ID, boots.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddToCart_Unauthenticated(t *testing.T) {
	svc := NewCartService(newTestDB(t))

	_, err := svc.AddToCart(uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestRemoveFromCart_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, "ada@example.com")

	_, err := svc.RemoveFromCart(uuid.New(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromCart_NonOwnerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	item := seedItem(t, db, owner.ID, "Sunglasses", 1000)

	line, err := svc.AddToCart(owner.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(line.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The cart line is intact.
	var stored models.CartItem
	assert.NoError(t, db.First(&stored, "id = ?", line.ID).Error)
}

func TestRemoveFromCart_OwnerDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	owner := seedUser(t, db, "owner@example.com")
	item := seedItem(t, db, owner.ID, "Sunglasses", 1000)

	line, err := svc.AddToCart(owner.ID, item.ID)
	require.NoError(t, err)

	removed, err := svc.RemoveFromCart(line.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, line.ID, removed.ID)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("id = ?", line.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCart_LoadsItemSnapshots(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)

	user := seedUser(t, db, "ada@example.com")
	item := seedItem(t, db, user.ID, "Sunglasses", 1000)
	_, err := svc.AddToCart(user.ID, item.ID)
	require.NoError(t, err)

	cart, err := svc.Cart(user.ID)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "Sunglasses", cart[0].Item.Title)
	assert.EqualValues(t, 1000, cart[0].Item.Price)
}

package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/models"
	"github.com/shopcore/backend/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGateway echoes the requested amount unless a fixed amount or an error
// is configured.
type fakeGateway struct {
	fixedAmount int64
	err         error

	calls        int
	lastAmount   int64
	lastCurrency string
	lastSource   string
}

func (g *fakeGateway) Charge(amount int64, currency, source string) (payment.Charge, error) {
	g.calls++
	g.lastAmount = amount
	g.lastCurrency = currency
	g.lastSource = source

	if g.err != nil {
		return payment.Charge{}, g.err
	}
	captured := amount
	if g.fixedAmount != 0 {
		captured = g.fixedAmount
	}
	return payment.Charge{ID: "ch_test_1", Amount: captured}, nil
}

func seedCart(t *testing.T, db *gorm.DB, userID uuid.UUID, prices ...int64) []models.CartItem {
	t.Helper()

	cartSvc := NewCartService(db)
	lines := make([]models.CartItem, 0, len(prices))
	for _, price := range prices {
		item := seedItem(t, db, userID, "Item", price)
		line, err := cartSvc.AddToCart(userID, item.ID)
		require.NoError(t, err)
		lines = append(lines, *line)
	}
	return lines
}

func TestCreateOrder_HappyPath(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{}
	svc := NewCheckoutService(db, testConfig(), gateway)

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000, 2500)

	order, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)

	assert.EqualValues(t, 3500, order.Total)
	assert.Equal(t, "ch_test_1", order.Charge)
	assert.Equal(t, user.ID, order.UserID)
	assert.Len(t, order.Items, 2)

	assert.Equal(t, 1, gateway.calls)
	assert.EqualValues(t, 3500, gateway.lastAmount)
	assert.Equal(t, "usd", gateway.lastCurrency)
	assert.Equal(t, "tok_visa", gateway.lastSource)

	// Cart is empty afterward.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Order round-trips from the store with its snapshots.
	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	assert.Len(t, stored.Items, 2)
}

func TestCreateOrder_GatewayAmountIsAuthoritative(t *testing.T) {
	db := newTestDB(t)
	// Gateway captures 3600 although the estimate is 3500.
	gateway := &fakeGateway{fixedAmount: 3600}
	svc := NewCheckoutService(db, testConfig(), gateway)

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000, 2500)

	order, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)
	assert.EqualValues(t, 3600, order.Total)
}

func TestCreateOrder_QuantityMultipliesEstimate(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{}
	svc := NewCheckoutService(db, testConfig(), gateway)
	cartSvc := NewCartService(db)

	user := seedUser(t, db, "ada@example.com")
	item := seedItem(t, db, user.ID, "Boots", 2000)
	_, err := cartSvc.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(user.ID, item.ID)
	require.NoError(t, err)

	order, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)
	assert.EqualValues(t, 4000, gateway.lastAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrder_GatewayRejection(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{err: errors.New("card declined")}
	svc := NewCheckoutService(db, testConfig(), gateway)

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000, 2500)

	_, err := svc.CreateOrder(user.ID, "tok_chargeDeclined")
	assert.ErrorIs(t, err, ErrPayment)

	// No order, cart untouched.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)

	var lines int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&lines).Error)
	assert.EqualValues(t, 2, lines)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	gateway := &fakeGateway{}
	svc := NewCheckoutService(db, testConfig(), gateway)
	user := seedUser(t, db, "ada@example.com")

	_, err := svc.CreateOrder(user.ID, "tok_visa")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, gateway.calls)
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewCheckoutService(newTestDB(t), testConfig(), gateway)

	_, err := svc.CreateOrder(uuid.Nil, "tok_visa")
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, 0, gateway.calls)
}

func TestCreateOrder_SnapshotsAreValueCopies(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db, testConfig(), &fakeGateway{})

	user := seedUser(t, db, "ada@example.com")
	item := seedItem(t, db, user.ID, "Sunglasses", 1000)
	_, err := NewCartService(db).AddToCart(user.ID, item.ID)
	require.NoError(t, err)

	order, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)

	// Edit the catalog after purchase.
	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", item.ID).
		Updates(map[string]interface{}{"title": "Rebranded", "price": 9999}).Error)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Sunglasses", stored.Items[0].Title)
	assert.EqualValues(t, 1000, stored.Items[0].Price)
}

func TestCreateOrder_CartClearFailureIsNonFatal(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db, testConfig(), &fakeGateway{})

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000, 2500)

	// Refuse cart-line deletes from here on; the order must still come back.
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("refuse_cart_clear", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.CartItem); ok {
			tx.AddError(errors.New("delete refused"))
		}
	}))

	order, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)
	assert.EqualValues(t, 3500, order.Total)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)

	// The stale cart is left behind for a later clear.
	var lines int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&lines).Error)
	assert.EqualValues(t, 2, lines)
}

func TestCreateOrder_PersistFailureNamesCharge(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db, testConfig(), &fakeGateway{})

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000, 2500)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("refuse_order_create", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Order); ok {
			tx.AddError(errors.New("store unavailable"))
		}
	}))

	_, err := svc.CreateOrder(user.ID, "tok_visa")
	require.Error(t, err)
	// The charge already captured; the error must identify it for reconciliation.
	assert.Contains(t, err.Error(), "ch_test_1")

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)

	var lines int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&lines).Error)
	assert.EqualValues(t, 2, lines)
}

func TestOrder_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db, testConfig(), &fakeGateway{})

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	seedCart(t, db, owner.ID, 1000)

	order, err := svc.CreateOrder(owner.ID, "tok_visa")
	require.NoError(t, err)

	got, err := svc.Order(order.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.Order(order.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Order(uuid.New(), owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrders_ListsOwnOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db, testConfig(), &fakeGateway{})

	user := seedUser(t, db, "ada@example.com")
	seedCart(t, db, user.ID, 1000)
	_, err := svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)

	seedCart(t, db, user.ID, 2500)
	_, err = svc.CreateOrder(user.ID, "tok_visa")
	require.NoError(t, err)

	orders, err := svc.Orders(user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	stranger := seedUser(t, db, "stranger@example.com")
	orders, err = svc.Orders(stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

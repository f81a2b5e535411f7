package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/models"
	"github.com/shopcore/backend/internal/payment"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db      *gorm.DB
	cfg     *config.Config
	gateway payment.Gateway
}

func NewCheckoutService(db *gorm.DB, cfg *config.Config, gateway payment.Gateway) *CheckoutService {
	return &CheckoutService{db: db, cfg: cfg, gateway: gateway}
}

// CreateOrder turns the user's cart into an immutable order. The charge must
// capture before the order is persisted: an order never exists without a
// successful charge. A gateway rejection leaves the cart untouched. Clearing
// the cart after the order exists is best-effort; a stale cart is recoverable,
// a returned checkout failure after money moved is not.
func (s *CheckoutService) CreateOrder(userID uuid.UUID, paymentToken string) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("you must be signed in to complete this order: %w", ErrAuthRequired)
	}

	var cart []models.CartItem
	if err := s.db.Preload("Item").Where("user_id = ?", userID).Find(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: your cart is empty", ErrValidation)
	}

	// Provisional estimate for observability only. The gateway's captured
	// amount is what the order records.
	var estimate int64
	for _, line := range cart {
		estimate += line.Item.Price * int64(line.Quantity)
	}
	slog.Info("charging cart", "user_id", userID.String(), "estimate", estimate, "lines", len(cart))

	charge, err := s.gateway.Charge(estimate, s.cfg.Currency, paymentToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayment, err)
	}

	order := models.Order{
		ID:     uuid.New(),
		UserID: userID,
		Total:  charge.Amount,
		Charge: charge.ID,
		Items:  snapshotOrderItems(cart),
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		// The charge already captured; surface loudly for reconciliation.
		slog.Error("order persistence failed after charge capture",
			"user_id", userID.String(), "charge", charge.ID, "amount", charge.Amount, "error", err.Error())
		return nil, fmt.Errorf("failed to create order for charge %s: %w", charge.ID, err)
	}

	cartItemIDs := make([]uuid.UUID, len(cart))
	for i, line := range cart {
		cartItemIDs[i] = line.ID
	}
	if err := s.db.Where("id IN ?", cartItemIDs).Delete(&models.CartItem{}).Error; err != nil {
		// The order already succeeded; a stale cart is re-clearable.
		slog.Error("failed to clear cart after checkout",
			"user_id", userID.String(), "order_id", order.ID.String(), "error", err.Error())
	}

	return &order, nil
}

// Order fetches one order. Only its owner may read it.
func (s *CheckoutService) Order(orderID, userID uuid.UUID) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no order found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if order.UserID != userID {
		return nil, fmt.Errorf("%w: you can't see this order", ErrForbidden)
	}
	return &order, nil
}

// Orders lists the user's own orders, newest first.
func (s *CheckoutService) Orders(userID uuid.UUID) ([]models.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var orders []models.Order
	if err := s.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// snapshotOrderItems copies catalog fields by value. No Item or CartItem
// identifier survives into the snapshot, so later catalog edits cannot reach
// back into an order.
func snapshotOrderItems(cart []models.CartItem) []models.OrderItem {
	items := make([]models.OrderItem, len(cart))
	for i, line := range cart {
		items[i] = models.OrderItem{
			ID:          uuid.New(),
			Title:       line.Item.Title,
			Description: line.Item.Description,
			Image:       line.Item.Image,
			LargeImage:  line.Item.LargeImage,
			Price:       line.Item.Price,
			Quantity:    line.Quantity,
		}
	}
	return items
}

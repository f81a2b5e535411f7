package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/models"
	"gorm.io/gorm"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddToCart adds one unit of an item to the user's cart. A repeat add for the
// same (user, item) increments the existing line instead of creating a second
// row. The read-then-write admits a race under concurrent identical requests;
// the unique index on (user_id, item_id) keeps duplicates out of the store.
func (s *CartService) AddToCart(userID, itemID uuid.UUID) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var existing models.CartItem
	err := s.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Model(&existing).Update("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		existing.Quantity++
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.CartItem{
			ID:       uuid.New(),
			UserID:   userID,
			ItemID:   itemID,
			Quantity: 1,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
		return &item, nil

	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}
}

// RemoveFromCart deletes a cart line after checking it exists and belongs to
// the requesting user. The deleted record's identity is returned.
func (s *CartService) RemoveFromCart(cartItemID, userID uuid.UUID) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var item models.CartItem
	if err := s.db.First(&item, "id = ?", cartItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no cart item found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	if item.UserID != userID {
		return nil, fmt.Errorf("%w: cheatin huh", ErrForbidden)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return &item, nil
}

// Cart loads the user's full cart with each line's catalog snapshot fields.
func (s *CartService) Cart(userID uuid.UUID) ([]models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var items []models.CartItem
	if err := s.db.Preload("Item").Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return items, nil
}

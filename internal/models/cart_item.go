package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a user's cart. The (user, item) pair is unique;
// repeat adds increment Quantity instead of creating a second row.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"item"`
}

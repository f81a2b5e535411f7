package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the immutable record of a successful checkout. Total always equals
// the amount the payment gateway reports as captured, not the locally
// computed estimate.
type Order struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     int64       `gorm:"not null" json:"total"`
	Charge    string      `gorm:"size:255;not null" json:"charge"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is a value copy of catalog data taken at purchase time. It keeps
// no reference to the live Item row, so later catalog edits never alter
// historical orders.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:512" json:"image"`
	LargeImage  string    `gorm:"size:512" json:"large_image"`
	Price       int64     `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

// CartItem is one product line in a user's cart. The composite unique index
// keeps at most one row per (user, product); adding the same product again
// bumps the quantity instead.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"` // always > 0
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is the live line total; order placement snapshots it.
func (ci CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

package services

import (
	"errors"
	"fmt"

	"github.com/skinvibe/skinvibe-api/models"
	"gorm.io/gorm"
)

// CartItems returns the user's cart lines with products preloaded.
func CartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).
		Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart puts quantity units of a product into the user's cart. The stock
// check here is advisory only; the authoritative one runs at order placement.
// An existing line for the same product has its quantity incremented.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := GetProduct(db, productID)
	if err != nil {
		return err
	}
	if product.StockQuantity < quantity {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
	}

	var item models.CartItem
	err = db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		return db.Create(&item).Error
	}
	if err != nil {
		return err
	}

	item.Quantity += quantity
	return db.Save(&item).Error
}

// UpdateCartItemQuantity overwrites a line's quantity; zero or less removes it.
func UpdateCartItemQuantity(db *gorm.DB, userID, productID uint, quantity int) error {
	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cart item for product %d", ErrNotFound, productID)
		}
		return err
	}

	if quantity <= 0 {
		return db.Delete(&item).Error
	}

	product, err := GetProduct(db, productID)
	if err != nil {
		return err
	}
	if product.StockQuantity < quantity {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
	}

	item.Quantity = quantity
	return db.Save(&item).Error
}

func RemoveFromCart(db *gorm.DB, userID, productID uint) error {
	res := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: cart item for product %d", ErrNotFound, productID)
	}
	return nil
}

// ClearCart removes every line for the user. No-op on an empty cart.
func ClearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// CartTotal sums live price times quantity over the cart. Computed fresh on
// every call, never cached.
func CartTotal(db *gorm.DB, userID uint) (float64, error) {
	items, err := CartItems(db, userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total, nil
}

func CartItemCount(db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skinvibe/skinvibe-api/models"
	"gorm.io/gorm"
)

const orderNumberPrefix = "SKV-"

// generateOrderNumber derives a short human-readable reference from a random
// UUID, e.g. "SKV-9A1B2C3D". Uniqueness is backed by the DB constraint and
// the retry loop in CreateOrder.
func generateOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return orderNumberPrefix + token[:8]
}

type CreateOrderInput struct {
	ShippingAddressID uint
	BillingAddressID  *uint
	PaymentMethod     models.PaymentMethod
	Notes             string
}

// CreateOrder converts the user's cart into an immutable order snapshot,
// decrements stock and clears the cart, all inside one transaction. A failed
// stock check on any line rolls back everything.
func CreateOrder(db *gorm.DB, userID uint, in CreateOrderInput) (*models.Order, error) {
	items, err := CartItems(db, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shipping, err := GetAddress(db, in.ShippingAddressID)
	if err != nil {
		return nil, err
	}
	if shipping.UserID != userID {
		return nil, fmt.Errorf("%w: shipping address %d", ErrAccessDenied, shipping.ID)
	}
	if in.BillingAddressID != nil {
		billing, err := GetAddress(db, *in.BillingAddressID)
		if err != nil {
			return nil, err
		}
		if billing.UserID != userID {
			return nil, fmt.Errorf("%w: billing address %d", ErrAccessDenied, billing.ID)
		}
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	order := models.Order{
		UserID:            userID,
		TotalAmount:       total,
		Status:            models.OrderStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		PaymentMethod:     in.PaymentMethod,
		ShippingAddressID: in.ShippingAddressID,
		BillingAddressID:  in.BillingAddressID,
		Notes:             in.Notes,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Header first, to obtain the order id. The random token can collide
		// with an existing order number; regenerate on the unique violation.
		var createErr error
		for attempt := 0; attempt < 3; attempt++ {
			order.OrderNumber = generateOrderNumber()
			createErr = tx.Create(&order).Error
			if createErr == nil || !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				break
			}
		}
		if createErr != nil {
			return createErr
		}

		for _, item := range items {
			// Conditional decrement: zero rows affected means the stock
			// snapshot went stale, so concurrent checkouts cannot oversell.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Product.Name)
			}

			line := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.Product.Price, // captured now, immune to later changes
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, line)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applies an operator status transition. SHIPPED and
// DELIVERED stamp their timestamps; CANCELLED restores each line's quantity
// to stock and is terminal, so nothing is restocked twice.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return err
		}
		if order.Status == models.OrderStatusCancelled {
			return fmt.Errorf("order %s is cancelled", order.OrderNumber)
		}

		now := time.Now()
		updates := map[string]interface{}{"status": status}
		switch status {
		case models.OrderStatusShipped:
			order.ShippedAt = &now
			updates["shipped_at"] = &now
		case models.OrderStatusDelivered:
			order.DeliveredAt = &now
			updates["delivered_at"] = &now
		case models.OrderStatusCancelled:
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).
					Error; err != nil {
					return err
				}
			}
		}

		order.Status = status
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdatePaymentStatus sets the payment state; no transition graph is enforced.
func UpdatePaymentStatus(db *gorm.DB, orderID uint, status models.PaymentStatus) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	order.PaymentStatus = status
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func SetTrackingNumber(db *gorm.DB, orderID uint, trackingNumber string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	order.TrackingNumber = trackingNumber
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Preload("Items.Product").
		Preload("ShippingAddress").Preload("BillingAddress").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrderByNumber(db *gorm.DB, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Preload("Items.Product").
		Where("order_number = ?", orderNumber).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderNumber)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersByUser returns the user's orders, newest first, optionally paginated.
func OrdersByUser(db *gorm.DB, userID uint, page, pageSize int) ([]models.Order, error) {
	query := db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).Order("created_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrders returns all orders (back office), optionally filtered by status.
func ListOrders(db *gorm.DB, status models.OrderStatus, page, pageSize int) ([]models.Order, error) {
	query := db.Preload("User").Preload("Items").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func CountOrders(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.Order{}).Count(&n).Error
	return n, err
}

func CountOrdersByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var n int64
	err := db.Model(&models.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

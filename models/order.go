package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // placed, awaiting fulfillment
	OrderStatusProcessing OrderStatus = "PROCESSING" // being packed
	OrderStatusShipped    OrderStatus = "SHIPPED"    // handed to the carrier
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // customer received it
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // terminal; restocks its lines

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"

	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

type Order struct {
	ID                uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber       string        `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID            uint          `gorm:"not null;index" json:"user_id"`
	User              User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount       float64       `gorm:"not null" json:"total_amount"`
	Status            OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	PaymentMethod     PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	ShippingAddressID uint          `gorm:"not null" json:"shipping_address_id"`
	ShippingAddress   Address       `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	BillingAddressID  *uint         `json:"billing_address_id,omitempty"`
	BillingAddress    *Address      `gorm:"foreignKey:BillingAddressID" json:"billing_address,omitempty"`
	Notes             string        `json:"notes"`
	TrackingNumber    string        `json:"tracking_number"`
	CreatedAt         time.Time     `json:"created_at"`
	ShippedAt         *time.Time    `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time    `json:"delivered_at,omitempty"`
}

// OrderItem is an immutable snapshot of a cart line at placement time.
// UnitPrice is the product price captured then, not a live reference.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

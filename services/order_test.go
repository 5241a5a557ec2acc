package services

import (
	"strings"
	"testing"

	"github.com/skinvibe/skinvibe-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Serums")
	product := createTestProduct(t, db, category.ID, "Glow Serum", 24.99, 5)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 2))

	order, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodCreditCard,
		Notes:             "leave at door",
	})
	require.NoError(t, err)

	assert.InDelta(t, 49.98, order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "SKV-"))
	assert.Len(t, order.OrderNumber, 12)

	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 24.99, order.Items[0].UnitPrice, 1e-9)

	// Stock decremented, cart emptied.
	updated, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.StockQuantity)

	items, err := CartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bob")
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	_, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodPayPal,
	})
	require.ErrorIs(t, err, ErrEmptyCart)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")
	category := createTestCategory(t, db, "Masks")
	plenty := createTestProduct(t, db, category.ID, "Clay Mask", 21.00, 10)
	scarce := createTestProduct(t, db, category.ID, "Rare Oil", 55.00, 3)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, plenty.ID, 2))
	require.NoError(t, AddToCart(db, user.ID, scarce.ID, 3))

	// Stock on the second line goes stale after add-to-cart.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", scarce.ID).
		Update("stock_quantity", 1).Error)

	_, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodCreditCard,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Rare Oil")

	// Nothing partially committed: stock, cart, and order tables untouched.
	p1, err := GetProduct(db, plenty.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p1.StockQuantity)

	p2, err := GetProduct(db, scarce.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p2.StockQuantity)

	items, err := CartItems(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	var orders, orderItems int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&orderItems).Error)
	assert.Zero(t, orders)
	assert.Zero(t, orderItems)
}

func TestOrderSnapshotImmuneToPriceChange(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dave")
	category := createTestCategory(t, db, "Toners")
	product := createTestProduct(t, db, category.ID, "Rose Toner", 18.50, 20)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 1))
	order, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodDebitCard,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", 99.99).Error)

	reloaded, err := GetOrder(db, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.InDelta(t, 18.50, reloaded.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 18.50, reloaded.TotalAmount, 1e-9)
}

func TestCreateOrderRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "eve")
	other := createTestUser(t, db, "mallory")
	category := createTestCategory(t, db, "Creams")
	product := createTestProduct(t, db, category.ID, "Night Cream", 30.00, 5)
	foreign := createTestAddress(t, db, other.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 1))

	_, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: foreign.ID,
		PaymentMethod:     models.PaymentMethodCreditCard,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateOrderStatusTimestamps(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "frank")
	category := createTestCategory(t, db, "Sunscreens")
	product := createTestProduct(t, db, category.ID, "SPF 50", 27.00, 8)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 1))
	order, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)
	assert.Nil(t, order.ShippedAt)
	assert.Nil(t, order.DeliveredAt)

	shipped, err := UpdateOrderStatus(db, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, shipped.Status)
	require.NotNil(t, shipped.ShippedAt)

	delivered, err := UpdateOrderStatus(db, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)
}

func TestCancelOrderRestocks(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grace")
	category := createTestCategory(t, db, "Eye Care")
	product := createTestProduct(t, db, category.ID, "Eye Cream", 29.00, 6)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 4))
	order, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	mid, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, mid.StockQuantity)

	cancelled, err := UpdateOrderStatus(db, order.ID, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	after, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, after.StockQuantity)

	// Cancelled is terminal; a second transition must not restock again.
	_, err = UpdateOrderStatus(db, order.ID, models.OrderStatusPending)
	require.Error(t, err)

	final, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, final.StockQuantity)
}

func TestUpdatePaymentStatusAndTracking(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "heidi")
	category := createTestCategory(t, db, "Treatments")
	product := createTestProduct(t, db, category.ID, "Retinol", 42.00, 5)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 1))
	order, err := CreateOrder(db, user.ID, CreateOrderInput{
		ShippingAddressID: shipping.ID,
		PaymentMethod:     models.PaymentMethodPayPal,
	})
	require.NoError(t, err)

	paid, err := UpdatePaymentStatus(db, order.ID, models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)

	tracked, err := SetTrackingNumber(db, order.ID, "TRK-123456")
	require.NoError(t, err)
	assert.Equal(t, "TRK-123456", tracked.TrackingNumber)

	_, err = UpdatePaymentStatus(db, 9999, models.PaymentStatusPaid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderQueries(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ivan")
	category := createTestCategory(t, db, "Cleansers")
	product := createTestProduct(t, db, category.ID, "Gel Cleanser", 24.99, 50)
	shipping := createTestAddress(t, db, user.ID, models.AddressTypeShipping, true)

	for i := 0; i < 3; i++ {
		require.NoError(t, AddToCart(db, user.ID, product.ID, 1))
		_, err := CreateOrder(db, user.ID, CreateOrderInput{
			ShippingAddressID: shipping.ID,
			PaymentMethod:     models.PaymentMethodCreditCard,
		})
		require.NoError(t, err)
	}

	orders, err := OrdersByUser(db, user.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	page, err := OrdersByUser(db, user.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	byNumber, err := GetOrderByNumber(db, orders[0].OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, orders[0].ID, byNumber.ID)

	total, err := CountOrders(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	pending, err := CountOrdersByStatus(db, models.OrderStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 3, pending)

	_, err = GetOrder(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	category := createTestCategory(t, db, "Serums")
	product := createTestProduct(t, db, category.ID, "Glow Serum", 38.00, 10)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 2))

	items, err := CartItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Adding the same product increments the existing row.
	require.NoError(t, AddToCart(db, user.ID, product.ID, 3))
	items, err = CartItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Quantity defaults to 1 when not positive.
	require.NoError(t, AddToCart(db, user.ID, product.ID, 0))
	items, err = CartItems(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAddToCartStockAndMissingProduct(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bob")
	category := createTestCategory(t, db, "Masks")
	product := createTestProduct(t, db, category.ID, "Clay Mask", 21.00, 3)

	err := AddToCart(db, user.ID, product.ID, 4)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Clay Mask")

	err = AddToCart(db, user.ID, 9999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")
	category := createTestCategory(t, db, "Toners")
	product := createTestProduct(t, db, category.ID, "Rose Toner", 18.50, 5)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 2))
	require.NoError(t, UpdateCartItemQuantity(db, user.ID, product.ID, 4))

	items, err := CartItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	// Exceeding stock is rejected.
	err = UpdateCartItemQuantity(db, user.ID, product.ID, 6)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Zero or less deletes the row.
	require.NoError(t, UpdateCartItemQuantity(db, user.ID, product.ID, 0))
	items, err = CartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// No such row anymore.
	err = UpdateCartItemQuantity(db, user.ID, product.ID, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dave")
	category := createTestCategory(t, db, "Creams")
	product := createTestProduct(t, db, category.ID, "Night Cream", 32.50, 5)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 1))
	require.NoError(t, RemoveFromCart(db, user.ID, product.ID))

	err := RemoveFromCart(db, user.ID, product.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClearCartIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "eve")
	category := createTestCategory(t, db, "Cleansers")
	product := createTestProduct(t, db, category.ID, "Gel Cleanser", 24.99, 5)

	require.NoError(t, AddToCart(db, user.ID, product.ID, 2))
	require.NoError(t, ClearCart(db, user.ID))

	items, err := CartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an already-empty cart is a no-op.
	require.NoError(t, ClearCart(db, user.ID))
}

func TestCartTotalIsLive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "frank")
	category := createTestCategory(t, db, "Serums")
	serum := createTestProduct(t, db, category.ID, "Vitamin C", 38.00, 10)
	toner := createTestProduct(t, db, category.ID, "Toner", 18.50, 10)

	require.NoError(t, AddToCart(db, user.ID, serum.ID, 2))
	require.NoError(t, AddToCart(db, user.ID, toner.ID, 1))

	total, err := CartTotal(db, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 94.50, total, 1e-9)

	// A catalog price change shows up on the next read; nothing is cached.
	require.NoError(t, db.Model(serum).Update("price", 40.00).Error)
	total, err = CartTotal(db, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 98.50, total, 1e-9)

	count, err := CartItemCount(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

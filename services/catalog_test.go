package services

import (
	"testing"

	"github.com/skinvibe/skinvibe-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsFilters(t *testing.T) {
	db := newTestDB(t)
	serums := createTestCategory(t, db, "Serums")
	masks := createTestCategory(t, db, "Masks")

	vitc := createTestProduct(t, db, serums.ID, "Vitamin C Serum", 38.00, 10)
	vitc.IsFeatured = true
	require.NoError(t, SaveProduct(db, vitc))

	createTestProduct(t, db, serums.ID, "Retinol Serum", 42.00, 10)
	createTestProduct(t, db, masks.ID, "Clay Mask", 21.00, 10)

	inactive := createTestProduct(t, db, masks.ID, "Discontinued Mask", 15.00, 0)
	inactive.IsActive = false
	require.NoError(t, SaveProduct(db, inactive))

	// Inactive products never surface.
	all, err := ListProducts(db, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	featured, err := ListProducts(db, ProductFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Vitamin C Serum", featured[0].Name)

	byCategory, err := ListProducts(db, ProductFilter{CategoryID: serums.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	priced, err := ListProducts(db, ProductFilter{MinPrice: 30, MaxPrice: 40})
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.Equal(t, "Vitamin C Serum", priced[0].Name)

	// Substring search is case-insensitive, over name and description.
	found, err := ListProducts(db, ProductFilter{Search: "vitamin"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Vitamin C Serum", found[0].Name)

	none, err := ListProducts(db, ProductFilter{Search: "shampoo"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListProductsPagination(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Cleansers")
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		createTestProduct(t, db, category.ID, "Cleanser "+name, 20.00, 5)
	}

	page, err := ListProducts(db, ProductFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	last, err := ListProducts(db, ProductFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestGetProduct(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Toners")
	product := createTestProduct(t, db, category.ID, "Rose Toner", 18.50, 5)

	fetched, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rose Toner", fetched.Name)
	assert.Equal(t, "Toners", fetched.Category.Name)

	_, err = GetProduct(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Masks")
	product := createTestProduct(t, db, category.ID, "Clay Mask", 21.00, 5)

	require.NoError(t, DeleteProduct(db, product.ID))
	require.ErrorIs(t, DeleteProduct(db, product.ID), ErrNotFound)
}

func TestCategories(t *testing.T) {
	db := newTestDB(t)
	active := createTestCategory(t, db, "Serums")

	hidden := models.Category{Name: "Archive", IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	onlyActive, err := ListCategories(db, true)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, active.Name, onlyActive[0].Name)

	all, err := ListCategories(db, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, DeleteCategory(db, active.ID))
	_, err = GetCategory(db, active.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, DeleteCategory(db, active.ID), ErrNotFound)
}

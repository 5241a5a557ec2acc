package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/skinvibe/skinvibe-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		SKU:           "SKU-" + name,
		IsActive:      true,
		CategoryID:    categoryID,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func createTestAddress(t *testing.T, db *gorm.DB, userID uint, addressType models.AddressType, isDefault bool) *models.Address {
	t.Helper()
	address := models.Address{
		UserID:      userID,
		Street:      "1 Main St",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62701",
		Country:     "USA",
		AddressType: addressType,
		IsDefault:   isDefault,
	}
	require.NoError(t, SaveAddress(db, &address))
	return &address
}

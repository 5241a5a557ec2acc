package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skinvibe/skinvibe-api/models"
	"gorm.io/gorm"
)

// ProductFilter narrows the active-product listing. Zero values mean
// "no filter". Search is a case-insensitive substring match against
// name and description; there is no ranking.
type ProductFilter struct {
	CategoryID uint
	MinPrice   float64
	MaxPrice   float64
	Search     string
	Featured   bool
	Page       int
	PageSize   int
}

// ListProducts returns active products matching the filter, newest first.
func ListProducts(db *gorm.DB, f ProductFilter) ([]models.Product, error) {
	query := db.Model(&models.Product{}).Preload("Category").Where("is_active = ?", true)

	if f.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if f.CategoryID != 0 {
		query = query.Where("category_id = ?", f.CategoryID)
	}
	if f.MinPrice > 0 {
		query = query.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		query = query.Where("price <= ?", f.MaxPrice)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if f.Page > 0 && f.PageSize > 0 {
		query = query.Offset((f.Page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAllProducts returns every product including inactive ones (back office).
func ListAllProducts(db *gorm.DB, page, pageSize int) ([]models.Product, error) {
	query := db.Model(&models.Product{}).Preload("Category")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func SaveProduct(db *gorm.DB, product *models.Product) error {
	return db.Save(product).Error
}

func DeleteProduct(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return nil
}

func CountProducts(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.Product{}).Count(&n).Error
	return n, err
}

// ListCategories returns categories, optionally only active ones.
func ListCategories(db *gorm.DB, activeOnly bool) ([]models.Category, error) {
	query := db.Model(&models.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var categories []models.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func GetCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &category, nil
}

func SaveCategory(db *gorm.DB, category *models.Category) error {
	return db.Save(category).Error
}

func DeleteCategory(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return nil
}

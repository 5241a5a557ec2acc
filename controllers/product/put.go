package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/controllers/respond"
	"github.com/skinvibe/skinvibe-api/services"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock_quantity"`
	SKU         *string  `json:"sku"`
	ImageURL    *string  `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	IsFeatured  *bool    `json:"is_featured"`
	Weight      *float64 `json:"weight"`
	Dimensions  *string  `json:"dimensions"`
	Ingredients *string  `json:"ingredients"`
	Usage       *string  `json:"usage_instructions"`
	CategoryID  *uint    `json:"category_id"`
}

// UpdateProduct partially updates a product (admin). Only fields present in
// the body are touched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := services.GetProduct(db, uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
				return
			}
			product.Price = *req.Price
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock quantity cannot be negative"})
				return
			}
			product.StockQuantity = *req.Stock
		}
		if req.SKU != nil {
			product.SKU = *req.SKU
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}
		if req.IsFeatured != nil {
			product.IsFeatured = *req.IsFeatured
		}
		if req.Weight != nil {
			product.Weight = *req.Weight
		}
		if req.Dimensions != nil {
			product.Dimensions = *req.Dimensions
		}
		if req.Ingredients != nil {
			product.Ingredients = *req.Ingredients
		}
		if req.Usage != nil {
			product.Usage = *req.Usage
		}
		if req.CategoryID != nil {
			if _, err := services.GetCategory(db, *req.CategoryID); err != nil {
				respond.Error(c, err)
				return
			}
			product.CategoryID = *req.CategoryID
		}

		if err := services.SaveProduct(db, product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

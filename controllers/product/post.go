package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/controllers/respond"
	"github.com/skinvibe/skinvibe-api/models"
	"github.com/skinvibe/skinvibe-api/services"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock_quantity" binding:"min=0"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  bool    `json:"is_featured"`
	Weight      float64 `json:"weight"`
	Dimensions  string  `json:"dimensions"`
	Ingredients string  `json:"ingredients"`
	Usage       string  `json:"usage_instructions"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// CreateProduct adds a product to the catalog (admin).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := services.GetCategory(db, req.CategoryID); err != nil {
			respond.Error(c, err)
			return
		}

		active := true
		if req.IsActive != nil {
			active = *req.IsActive
		}

		product := models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			StockQuantity: req.Stock,
			SKU:           req.SKU,
			ImageURL:      req.ImageURL,
			IsActive:      active,
			IsFeatured:    req.IsFeatured,
			Weight:        req.Weight,
			Dimensions:    req.Dimensions,
			Ingredients:   req.Ingredients,
			Usage:         req.Usage,
			CategoryID:    req.CategoryID,
		}
		if err := services.SaveProduct(db, &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

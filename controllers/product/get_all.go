package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/services"
	"gorm.io/gorm"
)

func parseUintQuery(c *gin.Context, key string) (uint, bool) {
	val := c.Query(key)
	if val == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func parseFloatQuery(c *gin.Context, key string) (float64, bool) {
	val := c.Query(key)
	if val == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// GET /products — active products with optional search, category, price
// range and pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := parseUintQuery(c, "category_id")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		minPrice, ok := parseFloatQuery(c, "min_price")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		maxPrice, ok := parseFloatQuery(c, "max_price")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}

		products, err := services.ListProducts(db, services.ProductFilter{
			CategoryID: categoryID,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Search:     c.Query("search"),
			Page:       parseIntQuery(c, "page", 0),
			PageSize:   parseIntQuery(c, "page_size", 0),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/featured
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := services.ListProducts(db, services.ProductFilter{Featured: true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /admin/products — includes inactive products.
func GetAllProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := services.ListAllProducts(db,
			parseIntQuery(c, "page", 0), parseIntQuery(c, "page_size", 0))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

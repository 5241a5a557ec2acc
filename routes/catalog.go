package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/skinvibe/skinvibe-api/controllers/product"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the unauthenticated storefront browsing
// endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/featured", productcontroller.GetFeaturedProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.GET("/category/:id", productcontroller.GetProductsByCategory(db))
	}

	r.GET("/categories", productcontroller.GetCategories(db))
}

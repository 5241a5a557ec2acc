package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/skinvibe/skinvibe-api/controllers/admin"
	cartControllers "github.com/skinvibe/skinvibe-api/controllers/cart"
	orderControllers "github.com/skinvibe/skinvibe-api/controllers/order"
	productcontroller "github.com/skinvibe/skinvibe-api/controllers/product"
	userControllers "github.com/skinvibe/skinvibe-api/controllers/user"
	"github.com/skinvibe/skinvibe-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the JWT
// middleware plus the admin role gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(jwtSecret), middleware.RequireAdmin())
	{
		// ─────────── Dashboard & User Management ───────────
		adminGroup.GET("/dashboard", adminController.Dashboard(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAllProductsAdmin(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocket)
			orderAdmin.GET("/:id", orderControllers.GetOrder(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.PUT("/:id/payment-status", orderControllers.UpdatePaymentStatus(db))
			orderAdmin.PUT("/:id/tracking", orderControllers.SetTrackingNumber(db))
		}

		// ─────────── Customer Carts ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetUserCartAdmin(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/skinvibe/skinvibe-api/controllers/address"
	cartControllers "github.com/skinvibe/skinvibe-api/controllers/cart"
	orderControllers "github.com/skinvibe/skinvibe-api/controllers/order"
	userControllers "github.com/skinvibe/skinvibe-api/controllers/user"
	"github.com/skinvibe/skinvibe-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth(jwtSecret))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddItem(db))
			cartGroup.PUT("", cartControllers.UpdateItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		// ──────────────── Address Book ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.ListAddresses(db))
			addressGroup.POST("", addressControllers.CreateAddress(db))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/place", orderControllers.PlaceOrder(db))
			orderGroup.GET("", orderControllers.GetMyOrders(db))
			orderGroup.GET("/:id", orderControllers.GetMyOrder(db))
		}
	}
}

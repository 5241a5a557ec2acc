package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/models"
	"github.com/skinvibe/skinvibe-api/services"
	"gorm.io/gorm"
)

// Dashboard returns the back-office overview counts.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalProducts, err := services.CountProducts(db)
		if err != nil {
			log.Println("failed to count products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		totalOrders, err := services.CountOrders(db)
		if err != nil {
			log.Println("failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		totalUsers, err := services.CountUsers(db)
		if err != nil {
			log.Println("failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		pendingOrders, err := services.CountOrdersByStatus(db, models.OrderStatusPending)
		if err != nil {
			log.Println("failed to count pending orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"total_users":    totalUsers,
			"pending_orders": pendingOrders,
		})
	}
}

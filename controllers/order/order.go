package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skinvibe/skinvibe-api/controllers/respond"
	"github.com/skinvibe/skinvibe-api/middleware"
	"github.com/skinvibe/skinvibe-api/models"
	"github.com/skinvibe/skinvibe-api/services"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	ShippingAddressID uint                 `json:"shipping_address_id" binding:"required"`
	BillingAddressID  *uint                `json:"billing_address_id"`
	PaymentMethod     models.PaymentMethod `json:"payment_method" binding:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL CASH_ON_DELIVERY"`
	Notes             string               `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required,oneof=PENDING PAID FAILED REFUNDED"`
}

type TrackingNumberRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// POST /user/orders/place — checkout.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.CreateOrder(db, userID, services.CreateOrderInput{
			ShippingAddressID: req.ShippingAddressID,
			BillingAddressID:  req.BillingAddressID,
			PaymentMethod:     req.PaymentMethod,
			Notes:             req.Notes,
		})
		if err != nil {
			respond.Error(c, err)
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

		orders, err := services.OrdersByUser(db, userID, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id — owner only.
func GetMyOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := services.GetOrder(db, uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders?status=PENDING
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

		orders, err := services.ListOrders(db,
			models.OrderStatus(c.Query("status")), page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// Fall back to the human-readable order number.
			order, nerr := services.GetOrderByNumber(db, c.Param("id"))
			if nerr != nil {
				respond.Error(c, nerr)
				return
			}
			c.JSON(http.StatusOK, order)
			return
		}

		order, err := services.GetOrder(db, uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.UpdateOrderStatus(db, uint(id), req.Status)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:id/payment-status
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.UpdatePaymentStatus(db, uint(id), req.PaymentStatus)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:id/tracking
func SetTrackingNumber(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req TrackingNumberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := services.SetTrackingNumber(db, uint(id), req.TrackingNumber)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

package addressControllers

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

type AddressRequest struct {
	Street       string             `json:"street" binding:"required,max=200"`
	AddressLine2 string             `json:"address_line_2" binding:"max=200"`
	City         string             `json:"city" binding:"required,max=100"`
	State        string             `json:"state" binding:"required,max=100"`
	PostalCode   string             `json:"postal_code" binding:"required,max=20"`
	Country      string             `json:"country" binding:"required,max=100"`
	AddressType  models.AddressType `json:"address_type" binding:"omitempty,oneof=SHIPPING BILLING"`
	IsDefault    bool               `json:"is_default"`
}

// GET /user/addresses?type=SHIPPING
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		addresses, err := services.Addresses(db, userID, models.AddressType(c.Query("type")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addressType := req.AddressType
		if addressType == "" {
			addressType = models.AddressTypeShipping
		}

		address := models.Address{
			UserID:       userID,
			Street:       req.Street,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			State:        req.State,
			PostalCode:   req.PostalCode,
			Country:      req.Country,
			AddressType:  addressType,
			IsDefault:    req.IsDefault,
		}
		if err := services.SaveAddress(db, &address); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id — ownership is checked here, before the service
// mutates anything.
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		address, err := services.GetAddress(db, uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address.Street = req.Street
		address.AddressLine2 = req.AddressLine2
		address.City = req.City
		address.State = req.State
		address.PostalCode = req.PostalCode
		address.Country = req.Country
		if req.AddressType != "" {
			address.AddressType = req.AddressType
		}
		address.IsDefault = req.IsDefault

		if err := services.SaveAddress(db, address); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		address, err := services.GetAddress(db, uint(id))
		if err != nil {
			respond.Error(c, err)
			return
		}
		if address.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		if err := services.DeleteAddress(db, uint(id)); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}

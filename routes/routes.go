package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, jwtSecret)

	// Public catalog browsing
	SetupCatalogRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, jwtSecret)

	// Admin routes (JWT + role gate)
	SetupAdminRoutes(r, db, jwtSecret)
}

package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/skinvibe/skinvibe-api/controllers/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, jwtSecret))
		authGroup.POST("/login", authControllers.Login(db, jwtSecret))
	}
}

package v1

import (
	"github.com/folio-simple/middleware"
	"github.com/folio-simple/repositories"
	"github.com/folio-simple/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Auth endpoints
	authController := NewAuthController(services.NewAuthService(userRepo))
	authController.RegisterRoutes(router)

	// Public portfolio endpoints - no auth required
	portfolioController := NewPortfolioController(
		services.NewPortfolioService(projectRepo, skillRepo, settingRepo))
	portfolioController.RegisterRoutes(router)

	// Admin panel endpoints - admins only, everyone else is turned away
	adminController := NewAdminController(
		services.NewAdminService(projectRepo, skillRepo, settingRepo))
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminController.RegisterRoutes(adminGroup)
}

package v1

import (
	"net/http"

	"github.com/folio-simple/services"
	"github.com/gin-gonic/gin"
)

// PortfolioController handles the public read-only endpoints
type PortfolioController struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioController creates a new portfolio controller
func NewPortfolioController(portfolioService *services.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// RegisterRoutes registers public portfolio routes
func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	portfolio := router.Group("/portfolio")
	{
		portfolio.GET("/projects", ctrl.ListProjects)
		portfolio.GET("/skills", ctrl.ListSkills)
		portfolio.GET("/settings", ctrl.GetSettings)
	}
}

// ListProjects returns every project for the works page
func (ctrl *PortfolioController) ListProjects(c *gin.Context) {
	projects, err := ctrl.portfolioService.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load projects",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// ListSkills returns every skill for the home page
func (ctrl *PortfolioController) ListSkills(c *gin.Context) {
	skills, err := ctrl.portfolioService.ListSkills()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load skills",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   skills,
	})
}

// GetSettings returns the public site settings for the contact page
func (ctrl *PortfolioController) GetSettings(c *gin.Context) {
	settings, err := ctrl.portfolioService.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load site settings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   settings,
	})
}

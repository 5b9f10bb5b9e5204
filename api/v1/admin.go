package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/folio-simple/dto"
	"github.com/folio-simple/repositories"
	"github.com/folio-simple/services"
	"github.com/folio-simple/validate"
	"github.com/gin-gonic/gin"
)

// AdminController handles the admin content-management endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new admin controller
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// RegisterRoutes registers admin routes. The group is expected to carry the
// auth and admin middleware already.
func (ctrl *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/overview", ctrl.GetOverview)

	projects := router.Group("/projects")
	{
		projects.POST("", ctrl.CreateProject)
		projects.DELETE("/:id", ctrl.DeleteProject)
	}

	skills := router.Group("/skills")
	{
		skills.POST("", ctrl.CreateSkill)
		skills.DELETE("/:id", ctrl.DeleteSkill)
	}

	router.PUT("/settings/whatsapp", ctrl.UpdateWhatsappLink)
}

// respondError converts a workflow error into the JSON envelope. Validation
// failures are the caller's to fix; store failures are retriable; settings
// singleton violations are configuration problems, not retriable.
func respondError(c *gin.Context, message string, err error) {
	var validationErr *validate.Error
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"error":   validationErr.Message,
		})
		return
	}

	var configErr *repositories.ConfigError
	if errors.As(err, &configErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Configuration error",
			"error":   configErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// GetOverview loads projects, skills and settings in one shot
func (ctrl *AdminController) GetOverview(c *gin.Context) {
	overview, err := ctrl.adminService.LoadOverview(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load admin overview", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   overview,
	})
}

// CreateProject adds a project and returns the reloaded overview
func (ctrl *AdminController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	overview, err := ctrl.adminService.AddProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to add project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Project added successfully",
		"data":    overview,
	})
}

// DeleteProject removes a project by id and returns the reloaded overview
func (ctrl *AdminController) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid project id",
		})
		return
	}

	overview, err := ctrl.adminService.DeleteProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
		"data":    overview,
	})
}

// CreateSkill adds a skill and returns the reloaded overview
func (ctrl *AdminController) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	overview, err := ctrl.adminService.AddSkill(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to add skill", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Skill added successfully",
		"data":    overview,
	})
}

// DeleteSkill removes a skill by id and returns the reloaded overview
func (ctrl *AdminController) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid skill id",
		})
		return
	}

	overview, err := ctrl.adminService.DeleteSkill(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to delete skill", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Skill deleted successfully",
		"data":    overview,
	})
}

// UpdateWhatsappLink updates the contact link on the settings singleton.
// No reload follows: the link is the only editable settings field.
func (ctrl *AdminController) UpdateWhatsappLink(c *gin.Context) {
	var req dto.UpdateWhatsappRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	link, err := ctrl.adminService.UpdateWhatsappLink(req.WhatsappLink)
	if err != nil {
		respondError(c, "Failed to update WhatsApp link", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "WhatsApp link updated successfully",
		"data":    dto.SettingsResponse{WhatsappLink: link},
	})
}

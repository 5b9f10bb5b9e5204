package dto

import "github.com/folio-simple/models"

// CreateProjectRequest represents a candidate project from the admin form.
// Domain validation happens in the validate package, not via binding tags,
// so failure messages stay deterministic.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CreateSkillRequest represents a candidate skill name
type CreateSkillRequest struct {
	Name string `json:"name"`
}

// UpdateWhatsappRequest carries the new contact link for site settings
type UpdateWhatsappRequest struct {
	WhatsappLink string `json:"whatsapp_link"`
}

// AdminOverviewResponse aggregates everything the admin panel displays
type AdminOverviewResponse struct {
	Projects     []models.Project `json:"projects"`
	Skills       []models.Skill   `json:"skills"`
	WhatsappLink string           `json:"whatsappLink"`
}

// SettingsResponse is the public view of site settings
type SettingsResponse struct {
	WhatsappLink string `json:"whatsapp_link"`
}

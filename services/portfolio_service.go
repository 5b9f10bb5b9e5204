package services

import (
	"github.com/folio-simple/dto"
	"github.com/folio-simple/models"
)

// PortfolioService serves the public, read-only portfolio surface.
type PortfolioService struct {
	projects projectStore
	skills   skillStore
	settings settingStore
}

// NewPortfolioService creates a new portfolio service instance
func NewPortfolioService(projects projectStore, skills skillStore, settings settingStore) *PortfolioService {
	return &PortfolioService{
		projects: projects,
		skills:   skills,
		settings: settings,
	}
}

// ListProjects returns all projects ordered by id
func (s *PortfolioService) ListProjects() ([]models.Project, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// ListSkills returns all skills ordered by id
func (s *PortfolioService) ListSkills() ([]models.Skill, error) {
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// GetSettings returns the public view of the site settings singleton
func (s *PortfolioService) GetSettings() (dto.SettingsResponse, error) {
	setting, err := s.settings.GetSingleton()
	if err != nil {
		return dto.SettingsResponse{}, err
	}
	return dto.SettingsResponse{WhatsappLink: setting.WhatsappLink}, nil
}

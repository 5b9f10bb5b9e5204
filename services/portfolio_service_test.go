package services

import (
	"testing"

	"github.com/folio-simple/models"
	"github.com/folio-simple/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioListProjects(t *testing.T) {
	projects := &fakeProjectStore{projects: []models.Project{
		{ID: 1, Title: "Café Site", URL: "https://cafe.example.com", Description: "A cozy cafe landing page"},
	}}
	svc := NewPortfolioService(projects, &fakeSkillStore{}, &fakeSettingStore{})

	got, err := svc.ListProjects()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Café Site", got[0].Title)
}

func TestPortfolioListSkillsEmptyNotNil(t *testing.T) {
	svc := NewPortfolioService(&fakeProjectStore{}, &fakeSkillStore{}, &fakeSettingStore{})

	got, err := svc.ListSkills()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPortfolioGetSettings(t *testing.T) {
	settings := &fakeSettingStore{setting: models.SiteSetting{ID: 1, WhatsappLink: "https://wa.me/123"}}
	svc := NewPortfolioService(&fakeProjectStore{}, &fakeSkillStore{}, settings)

	got, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/123", got.WhatsappLink)
}

func TestPortfolioGetSettingsMissingSingleton(t *testing.T) {
	settings := &fakeSettingStore{singletonErr: &repositories.ConfigError{Message: "settings not found"}}
	svc := NewPortfolioService(&fakeProjectStore{}, &fakeSkillStore{}, settings)

	_, err := svc.GetSettings()
	var cfgErr *repositories.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

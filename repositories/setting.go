package repositories

import (
	"github.com/folio-simple/models"
	"gorm.io/gorm"
)

// SettingRepository handles database operations for the site settings
// singleton row.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSingleton retrieves the one site settings row. Zero rows or more than
// one row violates the singleton invariant and returns a ConfigError
// rather than an arbitrary pick.
func (r *SettingRepository) GetSingleton() (models.SiteSetting, error) {
	var settings []models.SiteSetting
	result := r.db.Limit(2).Find(&settings)
	if result.Error != nil {
		return models.SiteSetting{}, storeErr("load site settings", result.Error)
	}
	switch len(settings) {
	case 0:
		return models.SiteSetting{}, &ConfigError{Message: "settings not found"}
	case 1:
		return settings[0], nil
	default:
		return models.SiteSetting{}, &ConfigError{Message: "multiple settings rows found"}
	}
}

// UpdateWhatsappLink updates the contact link on the settings row with the
// given id. Updating a missing id is an error, unlike delete.
func (r *SettingRepository) UpdateWhatsappLink(id int64, link string) error {
	result := r.db.Model(&models.SiteSetting{}).Where("id = ?", id).Update("whatsapp_link", link)
	if result.Error != nil {
		return storeErr("update whatsapp link", result.Error)
	}
	if result.RowsAffected == 0 {
		return &StoreError{Op: "update whatsapp link", Err: gorm.ErrRecordNotFound}
	}
	return nil
}

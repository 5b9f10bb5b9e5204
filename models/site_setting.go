package models

// SiteSetting stores site-wide configuration as a single row.
// The row is seeded by the migration script and is only ever
// updated by the admin workflow, never created or deleted by it.
type SiteSetting struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	WhatsappLink string `json:"whatsapp_link" gorm:"size:500"`
}

// TableName overrides GORM's pluralization to match the store schema.
func (SiteSetting) TableName() string {
	return "site_settings"
}

package models

// Skill represents a single skill listed on the home page
type Skill struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:100;not null"`
}

package models

// Project represents a portfolio project shown on the works page
type Project struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"size:200;not null"`
	URL         string `json:"url" gorm:"size:500;not null"`
	Description string `json:"description" gorm:"size:500;not null"`
}

package models

import "gorm.io/gorm"

// Project belongs to exactly one team; the parent is fixed at creation
type Project struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	TeamID uint `gorm:"not null;index" json:"team_id"`

	// Relations
	Team  Team   `json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

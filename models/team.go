package models

import "gorm.io/gorm"

// Team represents user teams for collaboration
type Team struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`

	// Relations
	Owner   User   `json:"-"`
	Members []User `gorm:"many2many:team_members" json:"members,omitempty"`

	Projects []Project `gorm:"foreignKey:TeamID" json:"projects,omitempty"`
}

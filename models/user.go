package models

import "gorm.io/gorm"

// User represents a user account in the system
type User struct {
	gorm.Model

	// Authentication fields
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Profile information
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatar_url,omitempty"`

	// Account status
	IsActive bool `gorm:"default:true" json:"is_active"`

	// Relations
	OwnedTeams    []Team `gorm:"foreignKey:OwnerID" json:"owned_teams,omitempty"`
	AssignedTasks []Task `gorm:"foreignKey:AssignedToID" json:"assigned_tasks,omitempty"`
}

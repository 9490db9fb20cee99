package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values. Any authorized member may move a task between any
// two statuses; there is no enforced forward-only workflow.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a unit of work inside a project
type Task struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Status   string `gorm:"default:'todo';index" json:"status"`
	Priority string `gorm:"default:'medium'" json:"priority"`

	DueDate *time.Time `json:"due_date"`

	ProjectID    uint  `gorm:"not null;index" json:"project_id"`
	AssignedToID *uint `gorm:"index" json:"assigned_to_id"`
	CreatedByID  uint  `gorm:"not null" json:"created_by_id"`

	// Relations
	Project    Project `json:"-"`
	AssignedTo *User   `json:"assigned_to,omitempty"`
	CreatedBy  User    `json:"-"`

	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
}

// Comment is attached to a task; comments are create-only
type Comment struct {
	gorm.Model
	TaskID   uint   `gorm:"not null;index" json:"task_id"`
	AuthorID uint   `gorm:"not null" json:"author_id"`
	Content  string `gorm:"not null" json:"content"`

	Author User `json:"-"`
}

// Attachment records file metadata for a task; blob storage lives elsewhere
type Attachment struct {
	gorm.Model
	TaskID       uint   `gorm:"not null;index" json:"task_id"`
	UploadedByID uint   `gorm:"not null" json:"uploaded_by_id"`
	FileName     string `gorm:"not null" json:"file_name"`
	FilePath     string `json:"file_path"`
	SizeBytes    int64  `json:"size_bytes"`

	UploadedBy User `json:"-"`
}

// ValidStatus reports whether s is one of the three known task statuses.
// Status filters on list endpoints deliberately skip this check and pass
// unknown values through, matching nothing.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

package models

import (
	"github.com/google/uuid"
)

// Exercise is a status-tracked work item scoped to an organization,
// independent of the level tree.
type Exercise struct {
	BaseModel
	Name           string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description    *string        `json:"description,omitempty" gorm:"type:text"`
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status         ExerciseStatus `json:"status" gorm:"type:varchar(20);not null;default:'PLANNED'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}

package models

import (
	"github.com/google/uuid"
)

// Level is a node in an organization-scoped hierarchy (e.g. department →
// team). Levels form a forest per organization through the parent pointer:
// a nil ParentID marks a root. A parent must belong to the same organization
// and the relation must stay acyclic under any parent mutation; both rules
// are enforced in the service layer before a write reaches the store.
type Level struct {
	BaseModel
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`

	// Relationships resolved by id lookup; a level never holds its subtree.
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Parent       *Level       `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children     []Level      `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// TableName returns the table name for Level
func (Level) TableName() string {
	return "levels"
}

package models

import (
	"github.com/google/uuid"
)

// Organization represents the root entity for multi-tenancy. An organization
// is never persisted without at least one ADMIN membership; creation happens
// together with the owner's membership in a single transaction.
type Organization struct {
	BaseModel
	Name    string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Owner     User                 `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members   []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Levels    []Level              `json:"levels,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Exercises []Exercise           `json:"exercises,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

package models

import (
	"github.com/google/uuid"
)

// OrganizationMember binds a user to an organization with a role. The
// composite unique index on (organization_id, user_id) guarantees a user
// holds at most one role per organization; concurrent duplicate inserts
// surface as a uniqueness violation, never a silent overwrite.
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user" validate:"required"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user;index" validate:"required"`
	Role           MemberRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}

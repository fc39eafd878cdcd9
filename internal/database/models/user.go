package models

// User mirrors a subject of the external identity provider. Rows are
// referenced by memberships and organization ownership but never mutated
// through this API.
type User struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name  string `json:"name" gorm:"size:200" validate:"max=200"`

	// Relationships
	Memberships []OrganizationMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

package testutils

import (
	"fmt"
	"time"

	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Name:  "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Organization",
		OwnerID: uuid.New(),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithOwner sets the owner for the organization
func (f *OrganizationFactory) WithOwner(ownerID uuid.UUID) *models.Organization {
	org := f.Create()
	org.OwnerID = ownerID
	return org
}

// MembershipFactory provides methods to create test OrganizationMember data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test membership with default values
func (f *MembershipFactory) Create(orgID, userID uuid.UUID, role models.MemberRole) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
}

// Admin creates an ADMIN membership
func (f *MembershipFactory) Admin(orgID, userID uuid.UUID) *models.OrganizationMember {
	return f.Create(orgID, userID, models.MemberRoleAdmin)
}

// Member creates a MEMBER membership
func (f *MembershipFactory) Member(orgID, userID uuid.UUID) *models.OrganizationMember {
	return f.Create(orgID, userID, models.MemberRoleMember)
}

// LevelFactory provides methods to create test Level data
type LevelFactory struct{}

// NewLevelFactory creates a new LevelFactory
func NewLevelFactory() *LevelFactory {
	return &LevelFactory{}
}

// Create creates a root test Level with default values
func (f *LevelFactory) Create(orgID uuid.UUID) *models.Level {
	return &models.Level{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Test Level",
		OrganizationID: orgID,
	}
}

// WithName sets a custom name for the level
func (f *LevelFactory) WithName(orgID uuid.UUID, name string) *models.Level {
	level := f.Create(orgID)
	level.Name = name
	return level
}

// WithParent creates a level under the given parent
func (f *LevelFactory) WithParent(orgID, parentID uuid.UUID) *models.Level {
	level := f.Create(orgID)
	level.ParentID = &parentID
	return level
}

// ExerciseFactory provides methods to create test Exercise data
type ExerciseFactory struct{}

// NewExerciseFactory creates a new ExerciseFactory
func NewExerciseFactory() *ExerciseFactory {
	return &ExerciseFactory{}
}

// Create creates a test Exercise with default values
func (f *ExerciseFactory) Create(orgID uuid.UUID) *models.Exercise {
	description := "A test exercise"
	return &models.Exercise{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Test Exercise",
		Description:    &description,
		OrganizationID: orgID,
		Status:         models.ExerciseStatusPlanned,
	}
}

// WithStatus sets a custom status for the exercise
func (f *ExerciseFactory) WithStatus(orgID uuid.UUID, status models.ExerciseStatus) *models.Exercise {
	exercise := f.Create(orgID)
	exercise.Status = status
	return exercise
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Level        *LevelFactory
	Exercise     *ExerciseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Level:        NewLevelFactory(),
		Exercise:     NewExerciseFactory(),
	}
}

package repository

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(org *models.Organization, ownerID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetWithLevels(id uuid.UUID) (*models.Organization, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.OrganizationMember) error
	Find(organizationID, userID uuid.UUID) (*models.OrganizationMember, error)
	ListForUser(userID uuid.UUID) ([]models.OrganizationMember, error)
}

// LevelRepositoryInterface defines the interface for level repository operations
type LevelRepositoryInterface interface {
	Create(level *models.Level) error
	GetByID(id uuid.UUID) (*models.Level, error)
	GetWithRelations(id uuid.UUID) (*models.Level, error)
	ListRoots(organizationID uuid.UUID) ([]models.Level, error)
	ListByOrganization(organizationID uuid.UUID) ([]models.Level, error)
	UpdateParent(id uuid.UUID, parentID *uuid.UUID) error
}

// ExerciseRepositoryInterface defines the interface for exercise repository operations
type ExerciseRepositoryInterface interface {
	Create(exercise *models.Exercise) error
	GetByID(id uuid.UUID) (*models.Exercise, error)
	ListByOrganization(organizationID uuid.UUID) ([]models.Exercise, error)
	UpdateStatus(id uuid.UUID, status models.ExerciseStatus) error
}

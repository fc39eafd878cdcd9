package service

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthorizationServiceInterface is the single decision point every
// tenant-scoped operation passes through before touching storage
type AuthorizationServiceInterface interface {
	Authorize(userID, organizationID uuid.UUID, requiredRole models.MemberRole) (*models.OrganizationMember, error)
}

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	Create(ownerID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	GetDetail(userID, organizationID uuid.UUID) (*OrganizationDetailResponse, error)
	AddMember(callerID, organizationID uuid.UUID, req *AddMemberRequest) (*MembershipResponse, error)
}

// LevelServiceInterface defines the interface for level service operations
type LevelServiceInterface interface {
	Create(userID uuid.UUID, req *CreateLevelRequest) (*LevelResponse, error)
	GetWithRelations(userID, levelID uuid.UUID) (*LevelDetailResponse, error)
	ListRoots(userID, organizationID uuid.UUID) ([]LevelResponse, error)
	ListByOrganization(userID, organizationID uuid.UUID) ([]LevelResponse, error)
	UpdateParent(userID, levelID uuid.UUID, req *UpdateLevelParentRequest) (*LevelResponse, error)
}

// ExerciseServiceInterface defines the interface for exercise service operations
type ExerciseServiceInterface interface {
	ListByOrganization(userID, organizationID uuid.UUID) ([]ExerciseResponse, error)
	Create(userID, organizationID uuid.UUID, req *CreateExerciseRequest) (*ExerciseResponse, error)
	UpdateStatus(userID, exerciseID uuid.UUID, req *UpdateExerciseStatusRequest) (*ExerciseResponse, error)
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
}

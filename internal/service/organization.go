package service

import (
	"errors"
	"fmt"
	"time"

	"training-portal-backend/internal/database/models"
	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/logger"
	"training-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations and their
// memberships
type OrganizationService struct {
	orgRepo        repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	authorizer     AuthorizationServiceInterface
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	authorizer AuthorizationServiceInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		authorizer:     authorizer,
		validator:      validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddMemberRequest represents the request to add a member to an organization
type AddMemberRequest struct {
	UserID uuid.UUID         `json:"user_id" validate:"required"`
	Role   models.MemberRole `json:"role" validate:"required"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// OrganizationDetailResponse is an organization together with its levels and
// the caller's own role in it
type OrganizationDetailResponse struct {
	OrganizationResponse
	Levels []LevelResponse   `json:"levels"`
	Role   models.MemberRole `json:"role"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	ID             uuid.UUID         `json:"id"`
	OrganizationID uuid.UUID         `json:"organization_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Role           models.MemberRole `json:"role"`
	CreatedAt      string            `json:"created_at"`
}

// Create creates an organization owned by ownerID. The organization row and
// the owner's ADMIN membership are written in one transaction; a failure of
// either write leaves neither record behind.
func (s *OrganizationService) Create(ownerID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The owner must exist; the identity provider only guarantees a verified
	// id, not that the subject has been provisioned.
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}

	org := &models.Organization{
		Name:    req.Name,
		OwnerID: ownerID,
	}

	if err := s.orgRepo.CreateWithOwner(org, ownerID); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": org.ID,
		"owner_id":        ownerID,
	}).Info("Organization created")

	return s.toResponse(org), nil
}

// ListForUser returns the organizations the user is a member of
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	memberships, err := s.membershipRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]OrganizationResponse, len(memberships))
	for i, m := range memberships {
		responses[i] = *s.toResponse(&m.Organization)
	}
	return responses, nil
}

// GetDetail returns an organization with its levels (ordered by creation
// time) and the caller's role. Any member may read; non-members get a
// denial even when the organization does not exist.
func (s *OrganizationService) GetDetail(userID, organizationID uuid.UUID) (*OrganizationDetailResponse, error) {
	membership, err := s.authorizer.Authorize(userID, organizationID, models.MemberRoleMember)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetWithLevels(organizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	levels := make([]LevelResponse, len(org.Levels))
	for i, level := range org.Levels {
		levels[i] = *toLevelResponse(&level)
	}

	return &OrganizationDetailResponse{
		OrganizationResponse: *s.toResponse(org),
		Levels:               levels,
		Role:                 membership.Role,
	}, nil
}

// AddMember adds a user to an organization with the given role. Admin only.
// A concurrent duplicate insert for the same (organization, user) pair is
// resolved by the store's unique constraint and surfaces as a conflict.
func (s *OrganizationService) AddMember(callerID, organizationID uuid.UUID, req *AddMemberRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.authorizer.Authorize(callerID, organizationID, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	membership := &models.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         req.UserID,
		Role:           req.Role,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"organization_id": organizationID,
		"user_id":         req.UserID,
		"role":            req.Role,
	}).Info("Member added to organization")

	return &MembershipResponse{
		ID:             membership.ID,
		OrganizationID: membership.OrganizationID,
		UserID:         membership.UserID,
		Role:           membership.Role,
		CreatedAt:      membership.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		OwnerID:   org.OwnerID,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
		UpdatedAt: org.UpdatedAt.Format(time.RFC3339),
	}
}

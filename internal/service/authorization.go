package service

import (
	"errors"
	"fmt"

	"training-portal-backend/internal/database/models"
	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorizationService resolves a (user, organization) pair to a membership
// or an explicit denial. Every tenant-scoped read and write goes through
// Authorize before a repository is touched; there is no code path that reads
// or mutates organization data on behalf of a user without a resolved
// membership.
type AuthorizationService struct {
	memberships repository.MembershipRepositoryInterface
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(memberships repository.MembershipRepositoryInterface) *AuthorizationService {
	return &AuthorizationService{memberships: memberships}
}

// Authorize looks up the caller's membership in the organization and checks
// it against the required role. A missing membership yields ErrNotAMember;
// a MEMBER requesting an admin-only operation yields ErrInsufficientRole.
// On success the membership is returned so callers can shape responses with
// the caller's role.
func (s *AuthorizationService) Authorize(userID, organizationID uuid.UUID, requiredRole models.MemberRole) (*models.OrganizationMember, error) {
	membership, err := s.memberships.Find(organizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}

	if requiredRole == models.MemberRoleAdmin && membership.Role != models.MemberRoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}

	return membership, nil
}

package repository

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership. Concurrent inserts for the same
// (organization, user) pair hit the composite unique index; the loser
// receives gorm.ErrDuplicatedKey.
func (r *MembershipRepository) Create(membership *models.OrganizationMember) error {
	return r.db.Create(membership).Error
}

// Find retrieves the membership for a (organization, user) pair. This is the
// point lookup behind every authorization decision; it runs against the
// composite unique index.
func (r *MembershipRepository) Find(organizationID, userID uuid.UUID) (*models.OrganizationMember, error) {
	var membership models.OrganizationMember
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", organizationID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListForUser retrieves all memberships of a user with their organizations
func (r *MembershipRepository) ListForUser(userID uuid.UUID) ([]models.OrganizationMember, error) {
	var memberships []models.OrganizationMember
	err := r.db.
		Preload("Organization").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

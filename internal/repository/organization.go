package repository

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates an organization together with the owner's ADMIN
// membership in a single transaction. An organization must never exist
// without at least one ADMIN, so the two inserts commit or roll back as one.
func (r *OrganizationRepository) CreateWithOwner(org *models.Organization, ownerID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		membership := &models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         ownerID,
			Role:           models.MemberRoleAdmin,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetWithLevels retrieves an organization with its levels ordered by creation
// time, the order consumers rely on to rebuild the level forest.
func (r *OrganizationRepository) GetWithLevels(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

package repository

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelRepository handles database operations for levels
type LevelRepository struct {
	db *gorm.DB
}

// NewLevelRepository creates a new level repository
func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

// Create creates a new level
func (r *LevelRepository) Create(level *models.Level) error {
	return r.db.Create(level).Error
}

// GetByID retrieves a level by ID
func (r *LevelRepository) GetByID(id uuid.UUID) (*models.Level, error) {
	var level models.Level
	err := r.db.First(&level, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// GetWithRelations retrieves a level with its direct children (ordered by
// name), its parent and its organization. One level of expansion only; full
// subtrees are rebuilt by consumers from ListByOrganization.
func (r *LevelRepository) GetWithRelations(id uuid.UUID) (*models.Level, error) {
	var level models.Level
	err := r.db.
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Parent").
		Preload("Organization").
		First(&level, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// ListRoots retrieves the levels of an organization without a parent,
// ordered by name
func (r *LevelRepository) ListRoots(organizationID uuid.UUID) ([]models.Level, error) {
	var levels []models.Level
	err := r.db.
		Where("organization_id = ? AND parent_id IS NULL", organizationID).
		Order("name ASC").
		Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// ListByOrganization retrieves all levels of an organization ordered by
// creation time. The flat parent-pointer list is the canonical
// representation; see service.BuildForest for the nested view.
func (r *LevelRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Level, error) {
	var levels []models.Level
	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// UpdateParent changes the parent pointer of a level. Validation of the new
// parent (same organization, no cycle) happens in the service layer.
func (r *LevelRepository) UpdateParent(id uuid.UUID, parentID *uuid.UUID) error {
	return r.db.Model(&models.Level{}).
		Where("id = ?", id).
		Update("parent_id", parentID).Error
}

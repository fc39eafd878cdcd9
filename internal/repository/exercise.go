package repository

import (
	"training-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseRepository handles database operations for exercises
type ExerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// Create creates a new exercise
func (r *ExerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

// GetByID retrieves an exercise by ID
func (r *ExerciseRepository) GetByID(id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// ListByOrganization retrieves all exercises of an organization, newest first
func (r *ExerciseRepository) ListByOrganization(organizationID uuid.UUID) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// UpdateStatus changes the status of an exercise
func (r *ExerciseRepository) UpdateStatus(id uuid.UUID, status models.ExerciseStatus) error {
	return r.db.Model(&models.Exercise{}).
		Where("id = ?", id).
		Update("status", status).Error
}

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

// ExerciseService handles business logic for exercises
type ExerciseService struct {
	exerciseRepo repository.ExerciseRepositoryInterface
	authorizer   AuthorizationServiceInterface
	validator    *validator.Validate
}

// NewExerciseService creates a new exercise service
func NewExerciseService(
	exerciseRepo repository.ExerciseRepositoryInterface,
	authorizer AuthorizationServiceInterface,
	validator *validator.Validate,
) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
		authorizer:   authorizer,
		validator:    validator,
	}
}

// CreateExerciseRequest represents the request to create an exercise
type CreateExerciseRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateExerciseStatusRequest represents the request to change an exercise's status
type UpdateExerciseStatusRequest struct {
	Status models.ExerciseStatus `json:"status" validate:"required"`
}

// ExerciseResponse represents the response for exercise operations
type ExerciseResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Description    *string               `json:"description,omitempty"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Status         models.ExerciseStatus `json:"status"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// ListByOrganization returns the exercises of an organization, newest first.
// Any member may read.
func (s *ExerciseService) ListByOrganization(userID, organizationID uuid.UUID) ([]ExerciseResponse, error) {
	if _, err := s.authorizer.Authorize(userID, organizationID, models.MemberRoleMember); err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	responses := make([]ExerciseResponse, len(exercises))
	for i, exercise := range exercises {
		responses[i] = *s.toResponse(&exercise)
	}
	return responses, nil
}

// Create creates an exercise in an organization. Admin only. New exercises
// always start as PLANNED regardless of input.
func (s *ExerciseService) Create(userID, organizationID uuid.UUID, req *CreateExerciseRequest) (*ExerciseResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.authorizer.Authorize(userID, organizationID, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: organizationID,
		Status:         models.ExerciseStatusPlanned,
	}
	if err := s.exerciseRepo.Create(exercise); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return s.toResponse(exercise), nil
}

// UpdateStatus transitions an exercise to a new status. Admin only; the
// organization for the check is read from the exercise row.
func (s *ExerciseService) UpdateStatus(userID, exerciseID uuid.UUID, req *UpdateExerciseStatusRequest) (*ExerciseResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	exercise, err := s.exerciseRepo.GetByID(exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	if _, err := s.authorizer.Authorize(userID, exercise.OrganizationID, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	if err := s.exerciseRepo.UpdateStatus(exercise.ID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update exercise status: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"exercise_id":     exercise.ID,
		"organization_id": exercise.OrganizationID,
		"status":          req.Status,
	}).Info("Exercise status updated")

	exercise.Status = req.Status
	return s.toResponse(exercise), nil
}

func (s *ExerciseService) toResponse(exercise *models.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:             exercise.ID,
		Name:           exercise.Name,
		Description:    exercise.Description,
		OrganizationID: exercise.OrganizationID,
		Status:         exercise.Status,
		CreatedAt:      exercise.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      exercise.UpdatedAt.Format(time.RFC3339),
	}
}

package handlers

import (
	"net/http"

	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExerciseHandler handles HTTP requests for exercises
type ExerciseHandler struct {
	service service.ExerciseServiceInterface
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(service service.ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// ListExercises handles GET /api/v1/organizations/:id/exercises
// @Summary List exercises of an organization
// @Description Exercises ordered by creation time, newest first; members only
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.ExerciseResponse "Successfully retrieved exercises"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	exercises, err := h.service.ListByOrganization(userID, orgID)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exercises", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateExercise handles POST /api/v1/organizations/:id/exercises
// @Summary Create a new exercise
// @Description Create an exercise in an organization; new exercises start as PLANNED; admins only
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param exercise body service.CreateExerciseRequest true "Exercise data"
// @Success 201 {object} service.ExerciseResponse "Successfully created exercise"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	exercise, err := h.service.Create(userID, orgID, &req)
	if err != nil {
		switch {
		case isValidationFailure(err), apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exercise", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

// UpdateExerciseStatus handles PATCH /api/v1/exercises/:id/status
// @Summary Change the status of an exercise
// @Description Transition an exercise between PLANNED, ONGOING and COMPLETED; admins only
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID (UUID)"
// @Param status body service.UpdateExerciseStatusRequest true "New status"
// @Success 200 {object} service.ExerciseResponse "Successfully updated exercise"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 404 {object} ErrorResponse "Exercise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /exercises/{id}/status [patch]
func (h *ExerciseHandler) UpdateExerciseStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exerciseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exercise ID: invalid UUID format"})
		return
	}

	var req service.UpdateExerciseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	exercise, err := h.service.UpdateStatus(userID, exerciseID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exercise", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, exercise)
}

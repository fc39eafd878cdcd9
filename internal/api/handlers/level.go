package handlers

import (
	"net/http"

	apperrors "training-portal-backend/internal/errors"
	"training-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LevelHandler handles HTTP requests for levels
type LevelHandler struct {
	service service.LevelServiceInterface
}

// NewLevelHandler creates a new level handler
func NewLevelHandler(service service.LevelServiceInterface) *LevelHandler {
	return &LevelHandler{service: service}
}

// CreateLevel handles POST /api/v1/levels
// @Summary Create a new level
// @Description Create a level in an organization, optionally under a parent level; admins only
// @Tags levels
// @Accept json
// @Produce json
// @Param level body service.CreateLevelRequest true "Level data"
// @Success 201 {object} service.LevelResponse "Successfully created level"
// @Failure 400 {object} ErrorResponse "Invalid request or parent"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not an admin of the organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /levels [post]
func (h *LevelHandler) CreateLevel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	level, err := h.service.Create(userID, &req)
	if err != nil {
		switch {
		case isValidationFailure(err), apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create level", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, level)
}

// GetLevel handles GET /api/v1/levels/:id
// @Summary Get level details
// @Description Get a level with its children, parent and organization; members of the level's organization only
// @Tags levels
// @Accept json
// @Produce json
// @Param id path string true "Level ID (UUID)"
// @Success 200 {object} service.LevelDetailResponse "Successfully retrieved level"
// @Failure 400 {object} ErrorResponse "Invalid level ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not a member of the level's organization"
// @Failure 404 {object} ErrorResponse "Level not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /levels/{id} [get]
func (h *LevelHandler) GetLevel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	levelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level ID: invalid UUID format"})
		return
	}

	level, err := h.service.GetWithRelations(userID, levelID)
	if err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get level", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, level)
}

// ListLevels handles GET /api/v1/organizations/:id/levels
// @Summary List all levels of an organization
// @Description Flat level list in creation order; consumers rebuild the tree from the parent pointers
// @Tags levels
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.LevelResponse "Successfully retrieved levels"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/levels [get]
func (h *LevelHandler) ListLevels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	levels, err := h.service.ListByOrganization(userID, orgID)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list levels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, levels)
}

// ListRootLevels handles GET /api/v1/organizations/:id/levels/roots
// @Summary List root levels of an organization
// @Description Levels without a parent, ordered by name
// @Tags levels
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.LevelResponse "Successfully retrieved root levels"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/levels/roots [get]
func (h *LevelHandler) ListRootLevels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	levels, err := h.service.ListRoots(userID, orgID)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list root levels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, levels)
}

// UpdateLevelParent handles PATCH /api/v1/levels/:id/parent
// @Summary Move a level under a new parent
// @Description Change a level's parent (nil makes it a root); same organization only, cycles rejected; admins only
// @Tags levels
// @Accept json
// @Produce json
// @Param id path string true "Level ID (UUID)"
// @Param parent body service.UpdateLevelParentRequest true "New parent"
// @Success 200 {object} service.LevelResponse "Successfully moved level"
// @Failure 400 {object} ErrorResponse "Invalid parent or cycle"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Not an admin"
// @Failure 404 {object} ErrorResponse "Level not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /levels/{id}/parent [patch]
func (h *LevelHandler) UpdateLevelParent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	levelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level ID: invalid UUID format"})
		return
	}

	var req service.UpdateLevelParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	level, err := h.service.UpdateParent(userID, levelID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move level", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, level)
}

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

// maxTreeDepth bounds the ancestor walk during reparenting. The walk also
// keeps a visited set, so this is a second line of defense against a tree
// that is already corrupt in the store.
const maxTreeDepth = 1000

// LevelService handles business logic for the organization-scoped level
// hierarchy. It owns the two tree invariants: a parent always belongs to the
// same organization as its child, and the parent relation stays acyclic
// under any mutation.
type LevelService struct {
	levelRepo  repository.LevelRepositoryInterface
	authorizer AuthorizationServiceInterface
	validator  *validator.Validate
}

// NewLevelService creates a new level service
func NewLevelService(
	levelRepo repository.LevelRepositoryInterface,
	authorizer AuthorizationServiceInterface,
	validator *validator.Validate,
) *LevelService {
	return &LevelService{
		levelRepo:  levelRepo,
		authorizer: authorizer,
		validator:  validator,
	}
}

// CreateLevelRequest represents the request to create a level
type CreateLevelRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=100"`
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
}

// UpdateLevelParentRequest represents the request to move a level under a
// new parent; a nil parent makes the level a root
type UpdateLevelParentRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// LevelResponse represents the response for level operations
type LevelResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// LevelDetailResponse is a level with one step of expansion in each
// direction: its direct children (ordered by name), its parent and its
// organization, as needed for breadcrumb navigation
type LevelDetailResponse struct {
	LevelResponse
	Children     []LevelResponse      `json:"children"`
	Parent       *LevelResponse       `json:"parent,omitempty"`
	Organization OrganizationResponse `json:"organization"`
}

// Create creates a level in an organization. Admin only. A supplied parent
// must exist and belong to the same organization; the organization equality
// check is the only boundary that matters since org membership is the sole
// access control.
func (s *LevelService) Create(userID uuid.UUID, req *CreateLevelRequest) (*LevelResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.authorizer.Authorize(userID, req.OrganizationID, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.levelRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidParent
			}
			return nil, fmt.Errorf("failed to look up parent level: %w", err)
		}
		if parent.OrganizationID != req.OrganizationID {
			return nil, apperrors.ErrInvalidParent
		}
	}

	level := &models.Level{
		Name:           req.Name,
		OrganizationID: req.OrganizationID,
		ParentID:       req.ParentID,
	}
	if err := s.levelRepo.Create(level); err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}

	return toLevelResponse(level), nil
}

// GetWithRelations returns a level with its children, parent and
// organization. The organization used for the membership check is read from
// the level record itself, so a caller cannot assert a different tenant than
// the level actually belongs to.
func (s *LevelService) GetWithRelations(userID, levelID uuid.UUID) (*LevelDetailResponse, error) {
	level, err := s.levelRepo.GetWithRelations(levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLevelNotFound
		}
		return nil, fmt.Errorf("failed to get level: %w", err)
	}

	if _, err := s.authorizer.Authorize(userID, level.OrganizationID, models.MemberRoleMember); err != nil {
		return nil, err
	}

	children := make([]LevelResponse, len(level.Children))
	for i, child := range level.Children {
		children[i] = *toLevelResponse(&child)
	}

	detail := &LevelDetailResponse{
		LevelResponse: *toLevelResponse(level),
		Children:      children,
		Organization: OrganizationResponse{
			ID:        level.Organization.ID,
			Name:      level.Organization.Name,
			OwnerID:   level.Organization.OwnerID,
			CreatedAt: level.Organization.CreatedAt.Format(time.RFC3339),
			UpdatedAt: level.Organization.UpdatedAt.Format(time.RFC3339),
		},
	}
	if level.Parent != nil {
		detail.Parent = toLevelResponse(level.Parent)
	}
	return detail, nil
}

// ListRoots returns the organization's top-level view: levels without a
// parent, ordered by name. Any member may read.
func (s *LevelService) ListRoots(userID, organizationID uuid.UUID) ([]LevelResponse, error) {
	if _, err := s.authorizer.Authorize(userID, organizationID, models.MemberRoleMember); err != nil {
		return nil, err
	}

	levels, err := s.levelRepo.ListRoots(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list root levels: %w", err)
	}
	return toLevelResponses(levels), nil
}

// ListByOrganization returns the full flat level list of an organization in
// creation order. Consumers rebuild the forest with BuildForest or their own
// grouping; the server does not nest.
func (s *LevelService) ListByOrganization(userID, organizationID uuid.UUID) ([]LevelResponse, error) {
	if _, err := s.authorizer.Authorize(userID, organizationID, models.MemberRoleMember); err != nil {
		return nil, err
	}

	levels, err := s.levelRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	return toLevelResponses(levels), nil
}

// UpdateParent moves a level under a new parent (or to the roots when the
// parent is nil). Admin only. The new parent must belong to the same
// organization, and the move must not make the level its own descendant.
func (s *LevelService) UpdateParent(userID, levelID uuid.UUID, req *UpdateLevelParentRequest) (*LevelResponse, error) {
	level, err := s.levelRepo.GetByID(levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLevelNotFound
		}
		return nil, fmt.Errorf("failed to get level: %w", err)
	}

	if _, err := s.authorizer.Authorize(userID, level.OrganizationID, models.MemberRoleAdmin); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.levelRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidParent
			}
			return nil, fmt.Errorf("failed to look up parent level: %w", err)
		}
		if parent.OrganizationID != level.OrganizationID {
			return nil, apperrors.ErrInvalidParent
		}
		if err := s.checkNoCycle(level.ID, parent); err != nil {
			return nil, err
		}
	}

	if err := s.levelRepo.UpdateParent(level.ID, req.ParentID); err != nil {
		return nil, fmt.Errorf("failed to update level parent: %w", err)
	}

	log := logger.New().WithFields(map[string]interface{}{
		"level_id":        level.ID,
		"organization_id": level.OrganizationID,
	})
	if req.ParentID != nil {
		log = log.WithField("parent_id", *req.ParentID)
	}
	log.Info("Level reparented")

	level.ParentID = req.ParentID
	return toLevelResponse(level), nil
}

// checkNoCycle walks the ancestor chain of the proposed parent. If the chain
// contains the level being moved, the parent is inside the level's own
// subtree and the move would create a cycle.
func (s *LevelService) checkNoCycle(levelID uuid.UUID, parent *models.Level) error {
	visited := map[uuid.UUID]bool{}
	current := parent
	for depth := 0; depth < maxTreeDepth; depth++ {
		if current.ID == levelID {
			return apperrors.ErrLevelCycle
		}
		if current.ParentID == nil {
			return nil
		}
		if visited[current.ID] {
			// Pre-existing cycle in the store; refuse to extend it.
			return apperrors.ErrLevelCycle
		}
		visited[current.ID] = true

		next, err := s.levelRepo.GetByID(*current.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Dangling parent pointer terminates the chain.
				return nil
			}
			return fmt.Errorf("failed to walk level ancestry: %w", err)
		}
		current = next
	}
	return apperrors.ErrLevelCycle
}

func toLevelResponse(level *models.Level) *LevelResponse {
	return &LevelResponse{
		ID:             level.ID,
		Name:           level.Name,
		OrganizationID: level.OrganizationID,
		ParentID:       level.ParentID,
		CreatedAt:      level.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      level.UpdatedAt.Format(time.RFC3339),
	}
}

func toLevelResponses(levels []models.Level) []LevelResponse {
	responses := make([]LevelResponse, len(levels))
	for i, level := range levels {
		responses[i] = *toLevelResponse(&level)
	}
	return responses
}

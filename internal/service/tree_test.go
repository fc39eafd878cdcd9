package service_test

import (
	"testing"

	"training-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func level(id uuid.UUID, name string, parentID *uuid.UUID) service.LevelResponse {
	return service.LevelResponse{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
}

// TestBuildForest tests nesting a flat parent-pointer list
func TestBuildForest(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()
	otherRootID := uuid.New()

	flat := []service.LevelResponse{
		level(rootID, "Engineering", nil),
		level(childID, "Backend Team", &rootID),
		level(grandchildID, "API Squad", &childID),
		level(otherRootID, "Sales", nil),
	}

	forest := service.BuildForest(flat)

	assert.Len(t, forest, 2)
	assert.Equal(t, "Engineering", forest[0].Name)
	assert.Equal(t, "Sales", forest[1].Name)

	assert.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Backend Team", forest[0].Children[0].Name)
	assert.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, "API Squad", forest[0].Children[0].Children[0].Name)
	assert.Empty(t, forest[1].Children)
}

// TestBuildForestEmpty tests the empty input
func TestBuildForestEmpty(t *testing.T) {
	forest := service.BuildForest(nil)
	assert.Empty(t, forest)
}

// TestBuildForestDanglingParent tests that a level whose parent is absent from
// the list falls out as a root
func TestBuildForestDanglingParent(t *testing.T) {
	missingID := uuid.New()
	orphanID := uuid.New()

	forest := service.BuildForest([]service.LevelResponse{
		level(orphanID, "Orphan", &missingID),
	})

	assert.Len(t, forest, 1)
	assert.Equal(t, "Orphan", forest[0].Name)
}

// TestBuildForestPreservesSiblingOrder tests that children keep the input order
func TestBuildForestPreservesSiblingOrder(t *testing.T) {
	rootID := uuid.New()

	flat := []service.LevelResponse{
		level(rootID, "Engineering", nil),
		level(uuid.New(), "Alpha Team", &rootID),
		level(uuid.New(), "Beta Team", &rootID),
		level(uuid.New(), "Gamma Team", &rootID),
	}

	forest := service.BuildForest(flat)

	assert.Len(t, forest, 1)
	names := make([]string, len(forest[0].Children))
	for i, child := range forest[0].Children {
		names[i] = child.Name
	}
	assert.Equal(t, []string{"Alpha Team", "Beta Team", "Gamma Team"}, names)
}

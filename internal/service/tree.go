package service

import (
	"github.com/google/uuid"
)

// LevelNode is a level with its children attached, as produced by
// BuildForest. Children keep the input order of the flat list.
type LevelNode struct {
	LevelResponse
	Children []*LevelNode `json:"children"`
}

// BuildForest turns a flat parent-pointer level list into a nested forest.
// It is a pure transform: group by parent id, attach each level to its
// parent, and let levels whose parent is absent from the list fall out as
// roots. Any consumer of the flat listing can run the same transform; the
// server only exposes it for convenience.
func BuildForest(levels []LevelResponse) []*LevelNode {
	nodes := make(map[uuid.UUID]*LevelNode, len(levels))
	ordered := make([]*LevelNode, 0, len(levels))
	for i := range levels {
		node := &LevelNode{LevelResponse: levels[i], Children: []*LevelNode{}}
		nodes[node.ID] = node
		ordered = append(ordered, node)
	}

	roots := make([]*LevelNode, 0)
	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

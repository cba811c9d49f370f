package entity

import (
	"fmt"
	"time"
)

// LayoutSnapshotVersion is the current format version of stored snapshots.
// Increment when the exported layout shape changes incompatibly.
const LayoutSnapshotVersion = 1

// LayoutSnapshot is a named, exported copy of a tree kept by the snapshot store.
type LayoutSnapshot struct {
	Name      string
	Version   int
	Width     float64
	Height    float64
	PaneCount int
	Layout    LayoutConfig
	SavedAt   time.Time
}

// NewLayoutSnapshot exports tree under name.
func NewLayoutSnapshot(name string, tree *Tree, savedAt time.Time) *LayoutSnapshot {
	bounds := tree.Bounds()
	return &LayoutSnapshot{
		Name:      name,
		Version:   LayoutSnapshotVersion,
		Width:     bounds.Width,
		Height:    bounds.Height,
		PaneCount: len(tree.Leaves()),
		Layout:    tree.Export(),
		SavedAt:   savedAt,
	}
}

// Bounds returns the container the snapshot was taken in.
func (s *LayoutSnapshot) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Restore rebuilds the tree. A zero bounds restores into the saved container.
func (s *LayoutSnapshot) Restore(bounds Rect, opts ...TreeOption) (*Tree, error) {
	if bounds.Width == 0 && bounds.Height == 0 {
		bounds = s.Bounds()
	}
	layout := s.Layout
	tree, err := NewTree(&layout, bounds, opts...)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %q: %w", s.Name, err)
	}
	return tree, nil
}

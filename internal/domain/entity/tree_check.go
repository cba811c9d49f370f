package entity

import "fmt"

// Validate checks the structural and geometric invariants of the tree:
//   - every node has zero or two children;
//   - siblings carry opposite tags on one axis;
//   - sibling extents add up to the parent's extent on the split axis and
//     each child starts where the previous one ends;
//   - children span the parent's full cross extent;
//   - every indexed node is reachable from the root and IDs are unique.
func (t *Tree) Validate() error {
	if t.root == noHandle {
		return fmt.Errorf("%w: tree has no root", ErrInvariantViolation)
	}
	root := &t.nodes[t.root]
	if root.position != PositionRoot || root.parent != noHandle {
		return fmt.Errorf("%w: root %s is tagged %s", ErrInvariantViolation, root.id, root.position)
	}

	seen := make(map[NodeID]struct{}, len(t.index))
	var err error
	t.walk(t.root, func(h handle) bool {
		err = t.checkNode(h, seen)
		return err == nil
	})
	if err != nil {
		return err
	}
	if len(seen) != len(t.index) {
		return fmt.Errorf("%w: %d nodes indexed, %d reachable", ErrInvariantViolation, len(t.index), len(seen))
	}
	return nil
}

func (t *Tree) checkNode(h handle, seen map[NodeID]struct{}) error {
	n := &t.nodes[h]
	if !n.live {
		return fmt.Errorf("%w: released slot %d is still linked", ErrInvariantViolation, h)
	}
	if _, dup := seen[n.id]; dup {
		return fmt.Errorf("%w: id %s appears twice", ErrInvariantViolation, n.id)
	}
	seen[n.id] = struct{}{}
	if idx, ok := t.index[n.id]; !ok || idx != h {
		return fmt.Errorf("%w: id %s is not indexed to its slot", ErrInvariantViolation, n.id)
	}
	if n.rect.Width < 0 || n.rect.Height < 0 {
		return fmt.Errorf("%w: %s has negative size %gx%g", ErrInvariantViolation, n.id, n.rect.Width, n.rect.Height)
	}

	a, b := n.children[0], n.children[1]
	if (a == noHandle) != (b == noHandle) {
		return fmt.Errorf("%w: %s has a single child", ErrInvariantViolation, n.id)
	}
	if a == noHandle {
		return nil
	}

	first, second := &t.nodes[a], &t.nodes[b]
	for _, c := range []*sash{first, second} {
		if c.parent != h {
			return fmt.Errorf("%w: %s does not point back to parent %s", ErrInvariantViolation, c.id, n.id)
		}
	}
	if !first.position.IsLeading() || second.position != first.position.Opposite() {
		return fmt.Errorf("%w: children of %s are tagged %s and %s", ErrInvariantViolation, n.id, first.position, second.position)
	}

	axis := first.position.Axis()
	cross := axis.Cross()
	extent := n.rect.Extent(axis)
	tol := sizeTolerance(extent)
	if !approxEqual(first.rect.Extent(axis)+second.rect.Extent(axis), extent, tol) {
		return fmt.Errorf("%w: children of %s span %g + %g, parent %g", ErrInvariantViolation,
			n.id, first.rect.Extent(axis), second.rect.Extent(axis), extent)
	}
	if !approxEqual(first.rect.Offset(axis), n.rect.Offset(axis), tol) ||
		!approxEqual(second.rect.Offset(axis), first.rect.Offset(axis)+first.rect.Extent(axis), tol) {
		return fmt.Errorf("%w: children of %s are not contiguous", ErrInvariantViolation, n.id)
	}
	crossTol := sizeTolerance(n.rect.Extent(cross))
	for _, c := range []*sash{first, second} {
		if !approxEqual(c.rect.Extent(cross), n.rect.Extent(cross), crossTol) ||
			!approxEqual(c.rect.Offset(cross), n.rect.Offset(cross), crossTol) {
			return fmt.Errorf("%w: %s does not span the cross axis of %s", ErrInvariantViolation, c.id, n.id)
		}
	}
	return nil
}

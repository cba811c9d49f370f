package entity

import "errors"

// Layout errors. All of them describe programmer or configuration mistakes;
// they are returned wrapped with context, so match them with errors.Is.
var (
	ErrInvalidSize             = errors.New("invalid size")
	ErrInvalidPosition         = errors.New("invalid position")
	ErrInvalidConfig           = errors.New("invalid layout config")
	ErrSiblingSizeMismatch     = errors.New("sibling sizes do not add up to parent")
	ErrSiblingPositionMismatch = errors.New("sibling positions are not opposite")
	ErrTargetNotFound          = errors.New("target not found")
	ErrParentNotFound          = errors.New("parent not found")
	ErrNotLeaf                 = errors.New("node is not a leaf")
	ErrNotMuntin               = errors.New("node is not a muntin")
	ErrDuplicateID             = errors.New("duplicate node id")
	ErrInvariantViolation      = errors.New("tree invariant violated")
)

package entity

import (
	"fmt"
	"strings"
)

// Position tags which edge of its parent a node occupies.
type Position int

const (
	PositionNone   Position = iota // Unspecified; only valid in configurations
	PositionRoot                   // The tree root fills the container
	PositionLeft                   // Left half of a horizontal split
	PositionRight                  // Right half of a horizontal split
	PositionTop                    // Top half of a vertical split
	PositionBottom                 // Bottom half of a vertical split
)

var positionNames = map[Position]string{
	PositionNone:   "none",
	PositionRoot:   "root",
	PositionLeft:   "left",
	PositionRight:  "right",
	PositionTop:    "top",
	PositionBottom: "bottom",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition converts a tag name ("left", "Top", ...) into a Position.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "root":
		return PositionRoot, nil
	case "left":
		return PositionLeft, nil
	case "right":
		return PositionRight, nil
	case "top":
		return PositionTop, nil
	case "bottom":
		return PositionBottom, nil
	default:
		return PositionNone, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Opposite returns the complementary tag on the same axis.
// Root and None map to themselves.
func (p Position) Opposite() Position {
	switch p {
	case PositionLeft:
		return PositionRight
	case PositionRight:
		return PositionLeft
	case PositionTop:
		return PositionBottom
	case PositionBottom:
		return PositionTop
	default:
		return p
	}
}

// IsDirectional reports whether p is one of the four edge tags.
func (p Position) IsDirectional() bool {
	return p >= PositionLeft && p <= PositionBottom
}

// IsLeading reports whether p comes first along its axis (left or top).
func (p Position) IsLeading() bool {
	return p == PositionLeft || p == PositionTop
}

// Axis returns the split axis a child with this tag belongs to.
func (p Position) Axis() Axis {
	switch p {
	case PositionLeft, PositionRight:
		return AxisHorizontal
	case PositionTop, PositionBottom:
		return AxisVertical
	default:
		return AxisNone
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	if len(text) == 0 || string(text) == "none" {
		*p = PositionNone
		return nil
	}
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Axis is the direction along which a muntin arranges its two children.
//
// AxisHorizontal means the children sit side by side (Left/Right) and share
// the parent's width; the divider between them is a vertical line.
// AxisVertical means the children are stacked (Top/Bottom) and share the
// parent's height.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Leading returns the first position along the axis.
func (a Axis) Leading() Position {
	switch a {
	case AxisHorizontal:
		return PositionLeft
	case AxisVertical:
		return PositionTop
	default:
		return PositionNone
	}
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	switch a {
	case AxisHorizontal:
		return AxisVertical
	case AxisVertical:
		return AxisHorizontal
	default:
		return AxisNone
	}
}

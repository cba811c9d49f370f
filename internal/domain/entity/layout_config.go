package entity

import (
	"fmt"
	"maps"
	"strconv"
)

// Reserved Store keys read by the interaction controllers.
const (
	StoreResizable = "resizable"
	StoreDroppable = "droppable"
	StoreTitle     = "title"
)

// Store is the opaque payload the UI layer attaches to a node.
// The tree only moves it around; it never interprets it, except for the
// reserved flags above.
type Store map[string]any

// Flag returns the boolean stored under key, or def when missing or not a boolean.
func (s Store) Flag(key string, def bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// String returns the string stored under key, or "".
func (s Store) String(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Clone returns a shallow copy; a nil store clones to an empty one.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	maps.Copy(out, s)
	return out
}

// LayoutEntry is one slot of a layout configuration. It is one of:
//   - Scalar: a bare size (0.3, "40%", 200) or position ("left")
//   - Pair: two nested entries, meaning the slot is split again
//   - *LayoutConfig: the full record
//
// Normalize turns any variant into a LayoutConfig.
type LayoutEntry interface {
	layoutEntry()
}

// Scalar is a bare size or position value.
type Scalar struct {
	Value any
}

// Pair is a slot that splits into two further entries.
type Pair [2]LayoutEntry

// LayoutConfig is the full, normalized configuration record of one node.
type LayoutConfig struct {
	ID        NodeID
	Size      SizeSpec
	Position  Position
	MinWidth  float64
	MinHeight float64
	// Children is empty for a pane or holds exactly two entries.
	Children []LayoutEntry
	Store    Store
}

func (Scalar) layoutEntry()        {}
func (Pair) layoutEntry()          {}
func (*LayoutConfig) layoutEntry() {}

// Split is shorthand for a full record with two children.
func Split(first, second LayoutEntry) *LayoutConfig {
	return &LayoutConfig{Children: []LayoutEntry{first, second}}
}

func (c *LayoutConfig) hasGeometry() bool {
	return c.Size.IsSet() || c.Position != PositionNone
}

// Normalize converts any LayoutEntry variant into a full LayoutConfig.
func Normalize(e LayoutEntry) (LayoutConfig, error) {
	switch v := e.(type) {
	case nil:
		return LayoutConfig{}, nil
	case *LayoutConfig:
		if v == nil {
			return LayoutConfig{}, nil
		}
		if n := len(v.Children); n != 0 && n != 2 {
			return LayoutConfig{}, fmt.Errorf("%w: node %q has %d children, want 0 or 2", ErrInvalidConfig, v.ID, n)
		}
		out := *v
		out.Children = append([]LayoutEntry(nil), v.Children...)
		return out, nil
	case Pair:
		return LayoutConfig{Children: []LayoutEntry{v[0], v[1]}}, nil
	case Scalar:
		return normalizeScalar(v.Value)
	default:
		return LayoutConfig{}, fmt.Errorf("%w: unsupported entry %T", ErrInvalidConfig, e)
	}
}

func normalizeScalar(value any) (LayoutConfig, error) {
	if s, ok := value.(string); ok {
		if pos, err := ParsePosition(s); err == nil {
			return LayoutConfig{Position: pos}, nil
		}
	}
	size, err := ParseSize(value)
	if err != nil {
		return LayoutConfig{}, err
	}
	return LayoutConfig{Size: size}, nil
}

// DecodeLayoutEntry converts generic decoded data (as produced by
// encoding/json or a TOML decoder) into a LayoutEntry. Maps become full
// records, two-element slices become pairs, numbers and strings become
// scalars. Keys other than id, size, position, minWidth, minHeight and
// children are kept in the node's Store.
func DecodeLayoutEntry(v any) (LayoutEntry, error) {
	switch t := v.(type) {
	case nil:
		return &LayoutConfig{}, nil
	case LayoutEntry:
		return t, nil
	case map[string]any:
		return decodeRecord(t)
	case []any:
		return decodePair(t)
	case []map[string]any:
		items := make([]any, len(t))
		for i := range t {
			items[i] = t[i]
		}
		return decodePair(items)
	case string:
		return Scalar{Value: t}, nil
	default:
		if _, ok := toFloat(v); ok {
			return Scalar{Value: v}, nil
		}
		return nil, fmt.Errorf("%w: unsupported value %T", ErrInvalidConfig, v)
	}
}

func decodePair(items []any) (LayoutEntry, error) {
	if len(items) != 2 {
		return nil, fmt.Errorf("%w: split needs 2 entries, got %d", ErrInvalidConfig, len(items))
	}
	first, err := DecodeLayoutEntry(items[0])
	if err != nil {
		return nil, err
	}
	second, err := DecodeLayoutEntry(items[1])
	if err != nil {
		return nil, err
	}
	return Pair{first, second}, nil
}

func decodeRecord(m map[string]any) (LayoutEntry, error) {
	cfg := &LayoutConfig{Store: Store{}}
	for key, value := range m {
		var err error
		switch key {
		case "id":
			cfg.ID, err = decodeID(value)
		case "size":
			cfg.Size, err = ParseSize(value)
		case "position":
			cfg.Position, err = decodePosition(value)
		case "minWidth", "min_width":
			cfg.MinWidth, err = decodeMin(key, value)
		case "minHeight", "min_height":
			cfg.MinHeight, err = decodeMin(key, value)
		case "children":
			cfg.Children, err = decodeChildren(value)
		default:
			cfg.Store[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeID(v any) (NodeID, error) {
	switch t := v.(type) {
	case string:
		return NodeID(t), nil
	default:
		if f, ok := toFloat(v); ok {
			return NodeID(strconv.FormatFloat(f, 'f', -1, 64)), nil
		}
		return "", fmt.Errorf("%w: id must be a string, got %T", ErrInvalidConfig, v)
	}
}

func decodePosition(v any) (Position, error) {
	s, ok := v.(string)
	if !ok {
		return PositionNone, fmt.Errorf("%w: %v", ErrInvalidPosition, v)
	}
	return ParsePosition(s)
}

func decodeMin(key string, v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidConfig, key, v)
	}
	return f, nil
}

func decodeChildren(v any) ([]LayoutEntry, error) {
	entry, err := DecodeLayoutEntry(v)
	if err != nil {
		return nil, err
	}
	pair, ok := entry.(Pair)
	if !ok {
		return nil, fmt.Errorf("%w: children must be a list of two entries", ErrInvalidConfig)
	}
	return []LayoutEntry{pair[0], pair[1]}, nil
}

// Map renders the record back into the generic shape understood by
// DecodeLayoutEntry, so it can be written as JSON or TOML. Store keys that
// collide with the structural keys are dropped.
func (c LayoutConfig) Map() map[string]any {
	out := make(map[string]any, len(c.Store)+6)
	for k, v := range c.Store {
		out[k] = v
	}
	for _, reserved := range []string{"id", "size", "position", "minWidth", "min_width", "minHeight", "min_height", "children"} {
		delete(out, reserved)
	}
	if c.ID != "" {
		out["id"] = string(c.ID)
	}
	if c.Size.IsSet() {
		out["size"] = c.Size.Raw()
	}
	if c.Position != PositionNone {
		out["position"] = c.Position.String()
	}
	if c.MinWidth > 0 {
		out["minWidth"] = c.MinWidth
	}
	if c.MinHeight > 0 {
		out["minHeight"] = c.MinHeight
	}
	if len(c.Children) == 2 {
		children := make([]any, 0, 2)
		for _, child := range c.Children {
			norm, err := Normalize(child)
			if err != nil {
				continue
			}
			children = append(children, norm.Map())
		}
		if len(children) == 2 {
			out["children"] = children
		}
	}
	return out
}

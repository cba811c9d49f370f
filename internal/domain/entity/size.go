package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SizeKind tells how a SizeSpec relates to the parent's extent.
type SizeKind int

const (
	SizeUnset    SizeKind = iota
	SizeFraction          // Value in (0,1), share of the parent extent
	SizePercent           // Value in (0,100], percent of the parent extent
	SizePixels            // Value >= 1, absolute pixels
)

// SizeSpec is a size as written in a layout configuration.
// The zero value means "not specified".
type SizeSpec struct {
	Kind  SizeKind
	Value float64
}

// Fraction returns a size covering f of the parent extent.
func Fraction(f float64) SizeSpec { return SizeSpec{Kind: SizeFraction, Value: f} }

// Percent returns a size covering p percent of the parent extent.
func Percent(p float64) SizeSpec { return SizeSpec{Kind: SizePercent, Value: p} }

// Pixels returns an absolute size.
func Pixels(px float64) SizeSpec { return SizeSpec{Kind: SizePixels, Value: px} }

// IsSet reports whether the size was specified.
func (s SizeSpec) IsSet() bool {
	return s.Kind != SizeUnset
}

// Resolve converts the size into pixels relative to parentExtent.
func (s SizeSpec) Resolve(parentExtent float64) float64 {
	switch s.Kind {
	case SizeFraction:
		return parentExtent * s.Value
	case SizePercent:
		return parentExtent * s.Value / 100
	case SizePixels:
		return s.Value
	default:
		return 0
	}
}

func (s SizeSpec) String() string {
	switch s.Kind {
	case SizeFraction, SizePixels:
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	case SizePercent:
		return strconv.FormatFloat(s.Value, 'f', -1, 64) + "%"
	default:
		return "unset"
	}
}

// Raw returns the size in the shape used by layout documents: a number for
// fractions and pixels, a "NN%" string for percentages, nil when unset.
func (s SizeSpec) Raw() any {
	switch s.Kind {
	case SizeFraction, SizePixels:
		return s.Value
	case SizePercent:
		return s.String()
	default:
		return nil
	}
}

// ParseSize interprets a size specifier. Accepted shapes:
//   - "NN%": percentage of the parent extent
//   - a number (or numeric string) below 1: fraction of the parent extent
//   - any other number: absolute pixels ("200px" is accepted too)
//
// A nil value yields an unset size.
func ParseSize(v any) (SizeSpec, error) {
	switch t := v.(type) {
	case nil:
		return SizeSpec{}, nil
	case SizeSpec:
		return t, nil
	case string:
		return parseSizeString(t)
	default:
		f, ok := toFloat(v)
		if !ok {
			return SizeSpec{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidSize, v)
		}
		return sizeFromNumber(f)
	}
}

// ResolveSize parses spec and resolves it against parentExtent.
func ResolveSize(spec any, parentExtent float64) (float64, error) {
	size, err := ParseSize(spec)
	if err != nil {
		return 0, err
	}
	if !size.IsSet() {
		return 0, fmt.Errorf("%w: empty size", ErrInvalidSize)
	}
	return size.Resolve(parentExtent), nil
}

func parseSizeString(raw string) (SizeSpec, error) {
	s := strings.TrimSpace(raw)
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || !isUsable(p) || p > 100 {
			return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
		}
		return Percent(p), nil
	}
	s = strings.TrimSuffix(s, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return SizeSpec{}, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
	}
	return sizeFromNumber(f)
}

func sizeFromNumber(f float64) (SizeSpec, error) {
	if !isUsable(f) {
		return SizeSpec{}, fmt.Errorf("%w: %v", ErrInvalidSize, f)
	}
	if f < 1 {
		return Fraction(f), nil
	}
	return Pixels(f), nil
}

func isUsable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

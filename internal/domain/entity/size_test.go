package entity

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    SizeSpec
		wantErr error
	}{
		{name: "nil is unset", input: nil, want: SizeSpec{}},
		{name: "fraction", input: 0.3, want: Fraction(0.3)},
		{name: "pixels", input: 200, want: Pixels(200)},
		{name: "one pixel", input: 1.0, want: Pixels(1)},
		{name: "int64 from toml", input: int64(320), want: Pixels(320)},
		{name: "json number", input: json.Number("0.25"), want: Fraction(0.25)},
		{name: "percent string", input: "40%", want: Percent(40)},
		{name: "percent with spaces", input: " 12.5 % ", want: Percent(12.5)},
		{name: "numeric string fraction", input: "0.5", want: Fraction(0.5)},
		{name: "numeric string pixels", input: "250", want: Pixels(250)},
		{name: "px suffix", input: "250px", want: Pixels(250)},
		{name: "garbage", input: "wide", wantErr: ErrInvalidSize},
		{name: "NaN string", input: "NaN", wantErr: ErrInvalidSize},
		{name: "NaN float", input: math.NaN(), wantErr: ErrInvalidSize},
		{name: "zero", input: 0, wantErr: ErrInvalidSize},
		{name: "negative", input: -5, wantErr: ErrInvalidSize},
		{name: "percent over 100", input: "120%", wantErr: ErrInvalidSize},
		{name: "bool", input: true, wantErr: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSize(%v) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%v) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveSize(t *testing.T) {
	tests := []struct {
		spec   any
		parent float64
		want   float64
	}{
		{spec: "40%", parent: 800, want: 320},
		{spec: 0.25, parent: 800, want: 200},
		{spec: "0.5", parent: 600, want: 300},
		{spec: 200, parent: 800, want: 200},
		{spec: "100%", parent: 640, want: 640},
	}

	for _, tt := range tests {
		got, err := ResolveSize(tt.spec, tt.parent)
		if err != nil {
			t.Fatalf("ResolveSize(%v, %v) unexpected error: %v", tt.spec, tt.parent, err)
		}
		if got != tt.want {
			t.Errorf("ResolveSize(%v, %v) = %v, want %v", tt.spec, tt.parent, got, tt.want)
		}
	}

	if _, err := ResolveSize(nil, 100); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ResolveSize(nil) error = %v, want ErrInvalidSize", err)
	}
}

func TestSizeSpec_Raw(t *testing.T) {
	if got := Percent(40).Raw(); got != "40%" {
		t.Errorf("Percent(40).Raw() = %v", got)
	}
	if got := Fraction(0.5).Raw(); got != 0.5 {
		t.Errorf("Fraction(0.5).Raw() = %v", got)
	}
	if got := (SizeSpec{}).Raw(); got != nil {
		t.Errorf("unset Raw() = %v, want nil", got)
	}
}

func TestPosition_Opposite(t *testing.T) {
	pairs := map[Position]Position{
		PositionLeft:   PositionRight,
		PositionRight:  PositionLeft,
		PositionTop:    PositionBottom,
		PositionBottom: PositionTop,
		PositionRoot:   PositionRoot,
		PositionNone:   PositionNone,
	}
	for in, want := range pairs {
		if got := in.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", in, got, want)
		}
		if in.IsDirectional() && in.Opposite().Axis() != in.Axis() {
			t.Errorf("%s and its opposite are on different axes", in)
		}
	}
}

func TestParsePosition(t *testing.T) {
	for _, name := range []string{"left", "Right", " top ", "BOTTOM", "root"} {
		if _, err := ParsePosition(name); err != nil {
			t.Errorf("ParsePosition(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParsePosition("diagonal"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("ParsePosition(diagonal) error = %v, want ErrInvalidPosition", err)
	}

	var p Position
	if err := p.UnmarshalText([]byte("bottom")); err != nil || p != PositionBottom {
		t.Errorf("UnmarshalText(bottom) = %s, %v", p, err)
	}
}

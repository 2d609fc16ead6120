package rig

import (
	"testing"

	"github.com/teslashibe/go-lightcurve/pkg/geometry"
)

func inUnit(v float32) bool { return v >= 0 && v <= 1 }

func TestPalette_DeterministicPerSeed(t *testing.T) {
	m := geometry.Build()

	a := Palette(m, 1)
	b := Palette(m, 1)
	if a != b {
		t.Error("same seed produced different palettes")
	}

	for i, c := range a {
		if !inUnit(c.R) || !inUnit(c.G) || !inUnit(c.B) {
			t.Errorf("face %d color out of range: %+v", i, c)
		}
	}
}

func TestWithPaletteSeed(t *testing.T) {
	m := geometry.Build()
	r := NewRegistry(m, WithPaletteSeed(99))
	want := Palette(m, 99)
	for i := 0; i < r.Len(); i++ {
		if r.Color(i) != want[i] {
			t.Errorf("face %d color = %+v, want %+v", i, r.Color(i), want[i])
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h    float64
		want Color
	}{
		{0, Color{1, 0, 0}},
		{1.0 / 3, Color{0, 1, 0}},
		{2.0 / 3, Color{0, 0, 1}},
		{1, Color{1, 0, 0}},
	}
	for _, tt := range tests {
		got := hsv(tt.h, 1, 1)
		if !vecEquals(got.Vec3(), tt.want.Vec3()) {
			t.Errorf("hsv(%v) = %+v, want %+v", tt.h, got, tt.want)
		}
	}
}

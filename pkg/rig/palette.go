package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/teslashibe/go-lightcurve/pkg/geometry"
)

// Color is a linear RGB triple in [0, 1].
type Color struct {
	R, G, B float32
}

// Palette sampling parameters.
const (
	paletteFrequency  = 0.9
	paletteSaturation = 0.65
	paletteValue      = 0.9
)

// Palette assigns each face a static panel color. Hue comes from 3D simplex
// noise sampled at the face center, so neighboring panels get related colors
// and the same seed always gives the same rig.
func Palette(model *geometry.Model, seed int64) [geometry.FaceCount]Color {
	noise := opensimplex.NewNormalized(seed)

	var out [geometry.FaceCount]Color
	for i := range out {
		c := model.Face(i).Center.Mul(paletteFrequency)
		hue := noise.Eval3(float64(c.X()), float64(c.Y()), float64(c.Z()))
		out[i] = hsv(hue, paletteSaturation, paletteValue)
	}
	return out
}

// FlameColor is the color every flame is drawn with.
var FlameColor = Color{R: 1, G: 0.8, B: 0.2}

// hsv converts hue in [0, 1) with saturation and value to RGB.
func hsv(h, s, v float64) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	sector := h * 6
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{R: float32(r), G: float32(g), B: float32(b)}
}

// Vec3 returns the color as a vector, for renderers that take one.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

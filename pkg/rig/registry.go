// Package rig holds the live state of the flame rig: one ControlState per face,
// index-aligned with the static geometry, and the visual parameters derived
// from both.
//
// A Registry is not safe for concurrent use. The control loop owns it; anything
// running on another goroutine must read copies handed out by the loop.
package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/teslashibe/go-lightcurve/pkg/geometry"
)

// FaceCount is the number of flames on the rig.
const FaceCount = geometry.FaceCount

// PairSize is the number of DMX channels per face: switch, flow.
const PairSize = 2

// FrameSize is the payload length that covers every face.
const FrameSize = FaceCount * PairSize

// DefaultPaletteSeed gives the stock panel colors.
const DefaultPaletteSeed = 6454

// Visual is everything a renderer needs to draw one flame.
type Visual struct {
	Face        int
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Scale       mgl32.Vec3
	Color       Color
	State       ControlState
}

// Registry is the fixed-order store of (face, control state) pairs.
type Registry struct {
	model  *geometry.Model
	states [FaceCount]ControlState
	colors [FaceCount]Color
}

// Option configures a Registry.
type Option func(*Registry)

// WithPaletteSeed picks the panel colors.
func WithPaletteSeed(seed int64) Option {
	return func(r *Registry) {
		r.colors = Palette(r.model, seed)
	}
}

// NewRegistry creates a registry with every flame off at full flow.
func NewRegistry(model *geometry.Model, opts ...Option) *Registry {
	r := &Registry{model: model}
	for i := range r.states {
		r.states[i] = ControlState{Switch: InitialSwitch, Flow: InitialFlow}
	}
	r.colors = Palette(model, DefaultPaletteSeed)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Model returns the geometry the registry was built from.
func (r *Registry) Model() *geometry.Model {
	return r.model
}

// Len returns the number of faces.
func (r *Registry) Len() int {
	return FaceCount
}

// State returns the control state of face i.
func (r *Registry) State(i int) ControlState {
	return r.states[i]
}

// States returns a copy of every control state.
func (r *Registry) States() [FaceCount]ControlState {
	return r.states
}

// Color returns the static panel color of face i.
func (r *Registry) Color(i int) Color {
	return r.colors[i]
}

// VisualParams returns the flame placement for face i. It only reads.
func (r *Registry) VisualParams(i int) Visual {
	f := r.model.Face(i)
	s := r.states[i]
	return Visual{
		Face:        i,
		Position:    f.Position,
		Orientation: f.Orientation,
		Scale:       s.Scale(),
		Color:       r.colors[i],
		State:       s,
	}
}

// Visuals returns VisualParams for every face, in face order.
func (r *Registry) Visuals() []Visual {
	out := make([]Visual, FaceCount)
	for i := range out {
		out[i] = r.VisualParams(i)
	}
	return out
}

// ApplyFrame writes a DMX payload onto the faces. Pair i (bytes 2i, 2i+1) sets
// face i. Bytes past FrameSize and a trailing odd byte are ignored; a short
// payload leaves the remaining faces as they were. It returns how many faces
// were written.
func (r *Registry) ApplyFrame(payload []byte) int {
	n := min(FaceCount, len(payload)/PairSize)
	for i := 0; i < n; i++ {
		r.states[i] = decodePair(payload[i*PairSize : i*PairSize+PairSize])
	}
	return n
}

package protocol

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/teslashibe/go-lightcurve/pkg/geometry"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// =============================================================================
// Helper functions for creating messages
// =============================================================================

// FromVec3 converts a vector
func FromVec3(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// FromQuat converts a quaternion
func FromQuat(q mgl32.Quat) Quat {
	return Quat{q.W, q.V[0], q.V[1], q.V[2]}
}

// FromColor converts a panel color
func FromColor(c rig.Color) RGB {
	return RGB(FromVec3(c.Vec3()))
}

// NewFaceState converts one rig visual
func NewFaceState(v rig.Visual) FaceState {
	return FaceState{
		Face:        v.Face,
		Side:        v.Face + 1,
		Switch:      v.State.Switch,
		Flow:        v.State.Flow,
		Position:    FromVec3(v.Position),
		Orientation: FromQuat(v.Orientation),
		Scale:       FromVec3(v.Scale),
		Color:       FromColor(v.Color),
		FlameColor:  FromColor(rig.FlameColor),
	}
}

// NewFacesData converts a whole rendered frame
func NewFacesData(tick uint64, frame []rig.Visual) FacesData {
	faces := make([]FaceState, len(frame))
	for i, v := range frame {
		faces[i] = NewFaceState(v)
	}
	return FacesData{Tick: tick, Faces: faces}
}

// NewFacesMessage creates a faces message from a rendered frame
func NewFacesMessage(tick uint64, frame []rig.Visual) (*Message, error) {
	return NewMessage(TypeFaces, NewFacesData(tick, frame))
}

// NewGeometryData describes the static rig held by reg
func NewGeometryData(reg *rig.Registry) GeometryData {
	m := reg.Model()

	verts := geometry.Vertices()
	out := GeometryData{
		Vertices: make([]Vec3, len(verts)),
		Faces:    make([]FaceGeometry, m.Len()),
		Align:    FromQuat(m.Align()),
	}
	for i, v := range verts {
		out.Vertices[i] = FromVec3(v)
	}

	for i := 0; i < m.Len(); i++ {
		f := m.Face(i)
		var corners [4]Vec3
		for k, c := range f.Corners(m) {
			corners[k] = FromVec3(c)
		}
		out.Faces[i] = FaceGeometry{
			Face:     i,
			Vertices: f.Vertices,
			Corners:  corners,
			Center:   FromVec3(f.Center),
			Nozzle:   FromVec3(m.NozzleDirection(i)),
			Ring:     geometry.RingOf(i).String(),
			Color:    FromColor(reg.Color(i)),
		}
	}
	return out
}

// NewGeometryMessage creates a geometry message
func NewGeometryMessage(reg *rig.Registry) (*Message, error) {
	return NewMessage(TypeGeometry, NewGeometryData(reg))
}

// NewStatsMessage creates a stats message
func NewStatsMessage(stats StatsData) (*Message, error) {
	return NewMessage(TypeStats, stats)
}

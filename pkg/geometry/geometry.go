// Package geometry builds the static shape of the Light Curve rig: a rhombic
// triacontahedron with 32 vertices and 30 rhombic faces, each face carrying one
// flame effector.
//
// The vertex and face tables are literal. Face order is the physical side
// numbering used by ArtNet senders (side number = index + 1), so channel pair i
// of a DMX payload always lands on face i. Never regenerate these tables.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Table sizes.
const (
	VertexCount = 32
	FaceCount   = 30
)

// FlameOffset scales a face center outward to the base of its flame.
const FlameOffset = 1.5

// Golden-ratio constants the vertex table is built from.
var (
	c0 = float32(math.Sqrt(5) / 4)
	c1 = float32((5 + math.Sqrt(5)) / 8)
	c2 = float32((5 + 3*math.Sqrt(5)) / 8)
)

// UpVertex is the vertex index rotated onto +Y by the global alignment, so the
// five-face star around it sits on top of the rig.
const UpVertex = 8

// Vertices returns the 32 rig vertices in canonical order.
//
// Three families permute (c1, 0, c2), (c2, c1, 0) and (0, c2, c1), then
// (0, c0, c2), (c2, 0, c0) and (c0, c2, 0), each with signs in binary order
// (+ before -, first non-zero coordinate major). The last 8 are (±c1, ±c1, ±c1).
func Vertices() [VertexCount]mgl32.Vec3 {
	const z = 0
	return [VertexCount]mgl32.Vec3{
		{c1, z, c2},
		{c1, z, -c2},
		{-c1, z, c2},
		{-c1, z, -c2},
		{c2, c1, z},
		{c2, -c1, z},
		{-c2, c1, z},
		{-c2, -c1, z},
		{z, c2, c1},
		{z, c2, -c1},
		{z, -c2, c1},
		{z, -c2, -c1},
		{z, c0, c2},
		{z, c0, -c2},
		{z, -c0, c2},
		{z, -c0, -c2},
		{c2, z, c0},
		{c2, z, -c0},
		{-c2, z, c0},
		{-c2, z, -c0},
		{c0, c2, z},
		{c0, -c2, z},
		{-c0, c2, z},
		{-c0, -c2, z},
		{c1, c1, c1},
		{c1, c1, -c1},
		{c1, -c1, c1},
		{c1, -c1, -c1},
		{-c1, c1, c1},
		{-c1, c1, -c1},
		{-c1, -c1, c1},
		{-c1, -c1, -c1},
	}
}

// Faces returns the 30 faces as vertex-index quads, in physical side order.
func Faces() [FaceCount][4]int {
	return [FaceCount][4]int{
		// lower star
		{23, 10, 11, 21},
		{27, 11, 5, 21},
		{15, 11, 1, 27},
		{31, 11, 3, 15},
		{31, 7, 11, 23},
		// lower diagonal
		{21, 10, 5, 26},
		{17, 1, 5, 27},
		{13, 3, 1, 15},
		{19, 7, 3, 31},
		{30, 10, 7, 23},
		// middle ring
		{14, 0, 10, 26},
		{26, 0, 5, 16},
		{16, 4, 5, 17},
		{25, 1, 4, 17},
		{13, 1, 9, 25},
		{29, 3, 9, 13},
		{19, 3, 6, 29},
		{18, 7, 6, 19},
		{18, 2, 7, 30},
		{30, 2, 10, 14},
		// upper diagonal
		{12, 0, 2, 14},
		{24, 4, 0, 16},
		{20, 9, 4, 25},
		{29, 9, 6, 22},
		{28, 2, 6, 18},
		// upper star
		{12, 8, 0, 24},
		{20, 4, 8, 24},
		{22, 9, 8, 20},
		{22, 8, 6, 28},
		{28, 8, 2, 12},
	}
}

// Face is one rhombic panel with its derived placement.
type Face struct {
	Index    int
	Vertices [4]int

	// Center is the mean of the four raw vertices.
	Center mgl32.Vec3

	// Orientation rotates the flame's reference axis (-Y) onto Center, then
	// applies the global alignment.
	Orientation mgl32.Quat

	// Position is the aligned flame base, Center scaled by FlameOffset.
	Position mgl32.Vec3
}

// Corners returns the four aligned corner points of the face, in quad order.
func (f Face) Corners(m *Model) [4]mgl32.Vec3 {
	var out [4]mgl32.Vec3
	for i, vi := range f.Vertices {
		out[i] = m.align.Rotate(m.vertices[vi])
	}
	return out
}

// Model is the immutable rig geometry. Build it once at startup and share it.
type Model struct {
	vertices [VertexCount]mgl32.Vec3
	faces    [FaceCount]Face
	align    mgl32.Quat
}

// ReferenceAxis is the direction a flame points before it is oriented.
var ReferenceAxis = mgl32.Vec3{0, -1, 0}

// Build computes centers, orientations and flame positions for every face.
func Build() *Model {
	m := &Model{vertices: Vertices()}
	m.align = RotationBetween(m.vertices[UpVertex], mgl32.Vec3{0, 1, 0})

	for i, quad := range Faces() {
		center := m.vertices[quad[0]].
			Add(m.vertices[quad[1]]).
			Add(m.vertices[quad[2]]).
			Add(m.vertices[quad[3]]).
			Mul(0.25)

		local := RotationBetween(ReferenceAxis, center)
		m.faces[i] = Face{
			Index:       i,
			Vertices:    quad,
			Center:      center,
			Orientation: m.align.Mul(local).Normalize(),
			Position:    m.align.Rotate(center.Mul(FlameOffset)),
		}
	}
	return m
}

// Vertex returns raw (unaligned) vertex i.
func (m *Model) Vertex(i int) mgl32.Vec3 { return m.vertices[i] }

// Face returns face i.
func (m *Model) Face(i int) Face { return m.faces[i] }

// Len returns the number of faces.
func (m *Model) Len() int { return len(m.faces) }

// Align returns the global alignment applied to every face.
func (m *Model) Align() mgl32.Quat { return m.align }

// AlignedCenter returns the center of face i after the global alignment.
func (m *Model) AlignedCenter(i int) mgl32.Vec3 {
	return m.align.Rotate(m.faces[i].Center)
}

package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func requireVec(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for k := 0; k < 3; k++ {
		require.InDelta(t, want[k], got[k], tol, msgAndArgs...)
	}
}

func TestVertices_CanonicalLayout(t *testing.T) {
	s5 := math.Sqrt(5)
	a, b, c := s5/4, (5+s5)/8, (5+3*s5)/8

	want := [VertexCount][3]float64{
		{b, 0, c}, {b, 0, -c}, {-b, 0, c}, {-b, 0, -c},
		{c, b, 0}, {c, -b, 0}, {-c, b, 0}, {-c, -b, 0},
		{0, c, b}, {0, c, -b}, {0, -c, b}, {0, -c, -b},
		{0, a, c}, {0, a, -c}, {0, -a, c}, {0, -a, -c},
		{c, 0, a}, {c, 0, -a}, {-c, 0, a}, {-c, 0, -a},
		{a, c, 0}, {a, -c, 0}, {-a, c, 0}, {-a, -c, 0},
		{b, b, b}, {b, b, -b}, {b, -b, b}, {b, -b, -b},
		{-b, b, b}, {-b, b, -b}, {-b, -b, b}, {-b, -b, -b},
	}

	got := Vertices()
	require.Len(t, got, 32)
	for i := range want {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[i][k], got[i][k], tol, "vertex %d axis %d", i, k)
		}
	}
	assert.Equal(t, got, Vertices(), "vertex table must be stable across calls")
}

func TestFaces_PhysicalOrder(t *testing.T) {
	faces := Faces()
	require.Len(t, faces, 30)

	// Side 1 and side 30 anchor the sender numbering.
	assert.Equal(t, [4]int{23, 10, 11, 21}, faces[0])
	assert.Equal(t, [4]int{27, 11, 5, 21}, faces[1])
	assert.Equal(t, [4]int{21, 10, 5, 26}, faces[5])
	assert.Equal(t, [4]int{14, 0, 10, 26}, faces[10])
	assert.Equal(t, [4]int{12, 0, 2, 14}, faces[20])
	assert.Equal(t, [4]int{22, 9, 8, 20}, faces[27])
	assert.Equal(t, [4]int{28, 8, 2, 12}, faces[29])

	seen := map[[4]int]bool{}
	for i, f := range faces {
		assert.False(t, seen[f], "face %d duplicated", i)
		seen[f] = true
		for _, v := range f {
			assert.True(t, v >= 0 && v < VertexCount, "face %d references vertex %d", i, v)
		}
	}
}

func TestBuild_CentersAreVertexMeans(t *testing.T) {
	m := Build()
	verts := Vertices()
	require.Equal(t, FaceCount, m.Len())

	for i := 0; i < m.Len(); i++ {
		f := m.Face(i)
		var sum [3]float64
		for _, vi := range f.Vertices {
			for k := 0; k < 3; k++ {
				sum[k] += float64(verts[vi][k])
			}
		}
		for k := 0; k < 3; k++ {
			assert.InDelta(t, sum[k]/4, f.Center[k], tol, "face %d axis %d", i, k)
		}
		assert.Equal(t, i, f.Index)
	}
}

func TestBuild_AlignmentPutsUpVertexOnTop(t *testing.T) {
	m := Build()
	up := m.Align().Rotate(m.Vertex(UpVertex))

	assert.InDelta(t, 0, up.X(), tol)
	assert.InDelta(t, m.Vertex(UpVertex).Len(), up.Y(), tol)
	assert.InDelta(t, 0, up.Z(), tol)

	// Upper star faces all sit above the lower star faces.
	for _, top := range Rings[UpperStar] {
		for _, bottom := range Rings[LowerStar] {
			assert.Greater(t, m.AlignedCenter(top).Y(), m.AlignedCenter(bottom).Y())
		}
	}
}

func TestBuild_OrientationsAreUnitAndPointOutward(t *testing.T) {
	m := Build()

	for i := 0; i < m.Len(); i++ {
		f := m.Face(i)
		q := f.Orientation

		for _, c := range []float32{q.W, q.X(), q.Y(), q.Z()} {
			require.False(t, math.IsNaN(float64(c)), "face %d orientation has NaN", i)
		}
		assert.InDelta(t, 1, q.Len(), tol, "face %d orientation not unit", i)

		got := q.Rotate(ReferenceAxis)
		want := m.AlignedCenter(i).Normalize()
		requireVec(t, want, got, "face %d flame direction", i)
	}
}

func TestBuild_Positions(t *testing.T) {
	m := Build()

	requireVec(t, mgl32.Vec3{0, -1.8674237, 1.1541313}, m.Face(0).Position)
	requireVec(t, mgl32.Vec3{0, 1.8674237, -1.1541313}, m.Face(27).Position)

	for i := 0; i < m.Len(); i++ {
		want := m.AlignedCenter(i).Mul(FlameOffset)
		requireVec(t, want, m.Face(i).Position, "face %d", i)
	}
}

func TestRotationBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to mgl32.Vec3
	}{
		{"identity", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 2, 0}},
		{"quarter turn", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"arbitrary", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{-3, 0.5, 2}},
		{"anti-parallel", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1.46, 0}},
		{"anti-parallel off axis", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := RotationBetween(tt.from, tt.to)
			assert.InDelta(t, 1, q.Len(), tol)
			requireVec(t, tt.to.Normalize(), q.Rotate(tt.from.Normalize()))
		})
	}
}

func TestRotationBetween_FallbackIsHalfTurnAboutX(t *testing.T) {
	q := RotationBetween(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0})
	want := mgl32.QuatRotate(math.Pi, FallbackAxis)

	assert.True(t, q.ApproxEqualThreshold(want, tol), "got %v want %v", q, want)
}

func TestRotationBetween_ZeroLengthFallsBack(t *testing.T) {
	want := mgl32.QuatRotate(math.Pi, FallbackAxis)
	for _, q := range []mgl32.Quat{
		RotationBetween(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		RotationBetween(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}),
	} {
		assert.True(t, q.ApproxEqualThreshold(want, tol), "got %v want %v", q, want)
	}
}

func TestBuild_Face27UsesFallback(t *testing.T) {
	// Face 27's raw center lies on +Y, opposite the flame reference axis.
	m := Build()
	f := m.Face(27)

	assert.InDelta(t, 0, f.Center.X(), tol)
	assert.InDelta(t, 0, f.Center.Z(), tol)
	assert.InDelta(t, 1, f.Orientation.Len(), tol)

	want := m.Align().Mul(mgl32.QuatRotate(math.Pi, FallbackAxis))
	assert.True(t, f.Orientation.ApproxEqualThreshold(want, tol) ||
		f.Orientation.ApproxEqualThreshold(want.Scale(-1), tol))
}

func TestCorners_LieOnAlignedFace(t *testing.T) {
	m := Build()
	for i := 0; i < m.Len(); i++ {
		f := m.Face(i)
		corners := f.Corners(m)

		var mean mgl32.Vec3
		for _, c := range corners {
			mean = mean.Add(c)
		}
		requireVec(t, m.AlignedCenter(i), mean.Mul(0.25), "face %d", i)
	}
}

package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// antiParallelEpsilon is how close to -1 the cosine between two directions may
// get before they count as opposite.
const antiParallelEpsilon = 1e-6

// FallbackAxis is the rotation axis used when two directions are opposite.
var FallbackAxis = mgl32.Vec3{1, 0, 0}

// RotationBetween returns the shortest unit rotation taking from onto to.
//
// Opposite directions have no unique shortest rotation, and a zero-length
// input has no direction at all; both get a half turn about FallbackAxis.
func RotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	if from.Len() == 0 || to.Len() == 0 {
		return mgl32.QuatRotate(math.Pi, FallbackAxis)
	}
	a := from.Normalize()
	b := to.Normalize()

	d := a.Dot(b)
	if d < -1+antiParallelEpsilon {
		return mgl32.QuatRotate(math.Pi, FallbackAxis)
	}

	q := mgl32.Quat{W: 1 + d, V: a.Cross(b)}
	return q.Normalize()
}

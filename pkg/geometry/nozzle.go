package geometry

import "github.com/go-gl/mathgl/mgl32"

// NozzleDirection returns the outward direction of face i's nozzle in the rig
// frame used by the pattern controllers: Z up, looking down the opposite axis
// from the render frame.
func (m *Model) NozzleDirection(i int) mgl32.Vec3 {
	c := m.AlignedCenter(i)
	return mgl32.Vec3{-c.X(), c.Z(), -c.Y()}
}

// ClosestFace returns the face among candidates whose nozzle points most
// nearly along dir. With no candidates every face is considered.
func (m *Model) ClosestFace(dir mgl32.Vec3, candidates ...int) int {
	if len(candidates) == 0 {
		candidates = make([]int, m.Len())
		for i := range candidates {
			candidates[i] = i
		}
	}

	best := candidates[0]
	bestDot := dir.Dot(m.NozzleDirection(best))
	for _, f := range candidates[1:] {
		if d := dir.Dot(m.NozzleDirection(f)); d > bestDot {
			best, bestDot = f, d
		}
	}
	return best
}

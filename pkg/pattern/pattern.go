package pattern

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/teslashibe/go-lightcurve/pkg/geometry"
)

// ErrUnknown is returned by New for a name with no pattern.
var ErrUnknown = errors.New("pattern: unknown pattern")

// Pattern produces the frame at elapsed time t.
type Pattern interface {
	Frame(t time.Duration) Frame
}

// Func adapts a function to Pattern.
type Func func(t time.Duration) Frame

// Frame implements Pattern.
func (fn Func) Frame(t time.Duration) Frame { return fn(t) }

var constructors = map[string]func(seed int64) Pattern{
	"stop":      func(int64) Pattern { return Func(Stop) },
	"pulse":     func(int64) Pattern { return Func(Pulse) },
	"wave":      func(int64) Pattern { return Func(Wave) },
	"neighbors": func(int64) Pattern { return Func(Neighbors) },
	"stars":     func(seed int64) Pattern { return NewStars(seed) },
	"flicker":   func(seed int64) Pattern { return NewFlicker(seed) },
}

// Names lists the available patterns.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the named pattern. Seed only matters for random patterns.
func New(name string, seed int64) (Pattern, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	return c(seed), nil
}

// phase returns t's position within period as a fraction in [0, 1), and
// which period it falls in.
func phase(t, period time.Duration) (float64, int64) {
	if t < 0 {
		t = 0
	}
	return float64(t%period) / float64(period), int64(t / period)
}

// Stop closes every solenoid and aperture.
func Stop(time.Duration) Frame {
	var f Frame
	f.Fill(false, 0)
	return f
}

// PulsePeriod is how long one pulse takes to open fully.
const PulsePeriod = 5 * time.Second

// Pulse opens every flame together, ramping flow from closed to full once per
// PulsePeriod.
func Pulse(t time.Duration) Frame {
	p, _ := phase(t, PulsePeriod)
	var f Frame
	f.Fill(true, p)
	return f
}

// WaveStep is how long each ring stays lit.
const WaveStep = 150 * time.Millisecond

// Wave lights one ring at a time at full flow, from the lower star up to the
// upper star, then starts again.
func Wave(t time.Duration) Frame {
	_, n := phase(t, WaveStep)
	var f Frame
	f.Fill(false, 1)
	f.Set(true, 1, geometry.Rings[n%int64(len(geometry.Rings))]...)
	return f
}

// NeighborStep is how long each neighbor pair is lit, and then dark.
const NeighborStep = 300 * time.Millisecond

// Neighbors walks through every face, lighting it with its first neighbor,
// with a dark gap between pairs.
func Neighbors(t time.Duration) Frame {
	_, n := phase(t, NeighborStep)
	var f Frame
	f.Fill(false, 1)
	if n%2 == 1 {
		return f
	}
	face := int(n/2) % geometry.FaceCount
	f.Set(true, 1, face, geometry.Neighbors[face][0])
	return f
}

// Star poof timing and aperture range.
const (
	StarPeriod      = 2 * time.Second
	StarMinAperture = 0.1
	StarMaxAperture = 1.0
)

// Stars picks a random star each StarPeriod and poofs it with its opposite
// star: flow grows to full over the first half and shrinks back over the
// second. Every other flame is off at minimum aperture.
type Stars struct {
	seed uint64
}

// NewStars creates a stars pattern. The same seed gives the same sequence.
func NewStars(seed int64) *Stars {
	return &Stars{seed: uint64(seed)}
}

// Star returns which star is lit during period n.
func (s *Stars) Star(n int64) int {
	r := rand.New(rand.NewPCG(s.seed, uint64(n)))
	return r.IntN(len(geometry.Stars))
}

// Frame implements Pattern.
func (s *Stars) Frame(t time.Duration) Frame {
	p, n := phase(t, StarPeriod)

	// Triangle wave: 0 -> 1 -> 0 over the period.
	grow := 1 - math.Abs(2*p-1)
	ap := StarMinAperture + grow*(StarMaxAperture-StarMinAperture)

	var f Frame
	f.Fill(false, StarMinAperture)
	for _, face := range geometry.Stars[s.Star(n)] {
		f.Set(true, ap, face, geometry.Opposite[face])
	}
	return f
}

// Flicker timing and range.
const (
	FlickerSpeed   = 1.5 // noise units per second
	FlickerSpatial = 1.2 // noise units per rig unit
	FlickerMinFlow = 0.2
)

// Flicker keeps every flame lit and drifts each one's flow with 4D simplex
// noise over (face center, time). Nearby faces move together.
type Flicker struct {
	noise   opensimplex.Noise
	centers [geometry.FaceCount][3]float64
}

// NewFlicker creates a flicker pattern. The same seed gives the same flames.
func NewFlicker(seed int64) *Flicker {
	fl := &Flicker{noise: opensimplex.NewNormalized(seed)}
	m := geometry.Build()
	for i := range fl.centers {
		c := m.Face(i).Center.Mul(FlickerSpatial)
		fl.centers[i] = [3]float64{float64(c.X()), float64(c.Y()), float64(c.Z())}
	}
	return fl
}

// Frame implements Pattern.
func (fl *Flicker) Frame(t time.Duration) Frame {
	w := t.Seconds() * FlickerSpeed
	var f Frame
	for i, c := range fl.centers {
		n := fl.noise.Eval4(c[0], c[1], c[2], w)
		f.Set(true, FlickerMinFlow+n*(1-FlickerMinFlow), i)
	}
	return f
}

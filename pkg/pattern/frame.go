// Package pattern generates flame frames for test senders. A pattern is a pure
// function of elapsed time, so a sender can run it at any frame rate and
// replay it exactly.
package pattern

import (
	"math"

	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// Frame is the control state of every face at one instant.
type Frame [rig.FaceCount]rig.ControlState

// Fill sets every face.
func (f *Frame) Fill(on bool, flow float64) {
	for i := range f {
		f[i] = rig.ControlState{Switch: on, Flow: FlowByte(flow)}
	}
}

// Set sets the given faces.
func (f *Frame) Set(on bool, flow float64, faces ...int) {
	for _, i := range faces {
		f[i] = rig.ControlState{Switch: on, Flow: FlowByte(flow)}
	}
}

// On counts faces with the switch closed.
func (f *Frame) On() int {
	n := 0
	for _, s := range f {
		if s.Switch {
			n++
		}
	}
	return n
}

// Payload encodes the frame as DMX channels: switch then flow, per face.
func (f *Frame) Payload() []byte {
	out := make([]byte, rig.FrameSize)
	for i, s := range f {
		if s.Switch {
			out[i*rig.PairSize] = 1
		}
		out[i*rig.PairSize+1] = s.Flow
	}
	return out
}

// FlowByte maps an aperture in [0, 1] to a channel value, clamping outside.
func FlowByte(p float64) uint8 {
	switch {
	case p <= 0 || math.IsNaN(p):
		return 0
	case p >= 1:
		return 255
	}
	return uint8(math.Floor(p * 255))
}

package rig

import "github.com/go-gl/mathgl/mgl32"

// Initial control values for every face.
const (
	InitialSwitch = false
	InitialFlow   = 255
)

// MaxFlameHeight is the vertical scale of a flame at full flow.
const MaxFlameHeight = 2

// ControlState is the live control of one flame: a solenoid switch and a flow
// valve opening.
type ControlState struct {
	Switch bool
	Flow   uint8
}

// FlowProportion returns Flow in [0, 1].
func (s ControlState) FlowProportion() float32 {
	return float32(s.Flow) / 255
}

// Scale returns the flame's local scale. An OFF flame collapses to zero; an ON
// flame keeps unit width and grows with flow.
func (s ControlState) Scale() mgl32.Vec3 {
	if !s.Switch {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{1, MaxFlameHeight * s.FlowProportion(), 1}
}

// decodePair reads one channel pair: switch byte then flow byte.
func decodePair(pair []byte) ControlState {
	return ControlState{Switch: pair[0] > 0, Flow: pair[1]}
}

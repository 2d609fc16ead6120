// Package protocol defines the JSON messages the simulator streams to viewers.
// This package is shared between the simulator (server) and flamewatch (client).
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Server → viewer messages
	TypeGeometry MessageType = "geometry" // Static rig geometry, sent once on connect
	TypeFaces    MessageType = "faces"    // Current flame state of every face
	TypeStats    MessageType = "stats"    // Receive counters, sent every stats interval
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// Vec3 is a point or direction as [x, y, z].
type Vec3 [3]float32

// Quat is a rotation as [w, x, y, z].
type Quat [4]float32

// RGB is a color with channels in [0, 1].
type RGB [3]float32

// =============================================================================
// Server → Viewer Message Types
// =============================================================================

// FaceState is the drawable state of one flame
type FaceState struct {
	Face        int   `json:"face"`
	Side        int   `json:"side"` // Physical side number, Face+1
	Switch      bool  `json:"switch"`
	Flow        uint8 `json:"flow"`
	Position    Vec3  `json:"position"`
	Orientation Quat  `json:"orientation"`
	Scale       Vec3  `json:"scale"`
	Color       RGB   `json:"color"`       // Static panel color
	FlameColor  RGB   `json:"flame_color"` // Cone color
}

// FacesData is one rendered frame
type FacesData struct {
	Tick  uint64      `json:"tick"`
	Faces []FaceState `json:"faces"`
}

// FaceGeometry is the static shape of one face
type FaceGeometry struct {
	Face     int     `json:"face"`
	Vertices [4]int  `json:"vertices"`
	Corners  [4]Vec3 `json:"corners"` // Aligned corner points
	Center   Vec3    `json:"center"`  // Raw (unaligned) center
	Nozzle   Vec3    `json:"nozzle"`  // Rig-frame nozzle direction
	Ring     string  `json:"ring"`
	Color    RGB     `json:"color"`
}

// GeometryData is the whole static rig
type GeometryData struct {
	Vertices []Vec3         `json:"vertices"`
	Faces    []FaceGeometry `json:"faces"`
	Align    Quat           `json:"align"`
}

// StatsData contains receive counters
type StatsData struct {
	Instance     string `json:"instance"`
	Ticks        uint64 `json:"ticks"`
	Frames       uint64 `json:"frames"`
	DecodeErrors uint64 `json:"decode_errors"`
	Other        uint64 `json:"other_commands"`
	FlamesOn     int    `json:"flames_on"`
	Clients      int    `json:"clients"`
	Dropped      uint64 `json:"dropped_broadcasts"`
}

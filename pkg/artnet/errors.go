package artnet

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrShortPacket is returned when a datagram ends before its header or declared data.
	ErrShortPacket = errors.New("artnet: packet too short")

	// ErrBadID is returned when a datagram does not start with "Art-Net\x00".
	ErrBadID = errors.New("artnet: bad packet id")

	// ErrUnknownOpCode is returned for opcodes outside the ArtNet table.
	ErrUnknownOpCode = errors.New("artnet: unknown opcode")

	// ErrBadLength is returned when an ArtDMX length exceeds 512 channels.
	ErrBadLength = errors.New("artnet: bad dmx length")

	// ErrNoDatagram is returned by a Source when nothing is queued.
	ErrNoDatagram = errors.New("artnet: no datagram available")

	// ErrBind is returned when the control socket cannot be opened.
	ErrBind = errors.New("artnet: bind failed")
)

// PacketError describes a datagram that could not be decoded.
type PacketError struct {
	// Op is the opcode read from the header, zero if the header was unreadable.
	Op OpCode

	// Size is the datagram length in bytes.
	Size int

	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *PacketError) Error() string {
	if e.Op != 0 {
		return fmt.Sprintf("%v (%s, %d bytes)", e.Err, e.Op, e.Size)
	}
	return fmt.Sprintf("%v (%d bytes)", e.Err, e.Size)
}

// Unwrap returns the underlying sentinel.
func (e *PacketError) Unwrap() error {
	return e.Err
}

// Package artnet decodes and encodes the subset of ArtNet the rig listens to,
// and owns the non-blocking UDP receiver that feeds the control loop.
//
// Every datagram starts with the 8-byte ID "Art-Net\x00" and a little-endian
// opcode. ArtDMX (OpOutput) continues with a big-endian protocol version,
// sequence, physical port, a 15-bit port address split into SubUni and Net,
// a big-endian data length and up to 512 channel bytes.
package artnet

import (
	"encoding/binary"
	"fmt"
)

// Wire constants.
const (
	Port            = 6454
	ProtocolVersion = 14

	headerSize    = 10 // ID + opcode
	dmxHeaderSize = 18

	// MaxChannels is the largest ArtDMX data block.
	MaxChannels = 512
)

// ID is the fixed packet prefix.
var ID = [8]byte{'A', 'r', 't', '-', 'N', 'e', 't', 0}

// Packet is a decoded ArtNet datagram.
type Packet interface {
	OpCode() OpCode
}

// DMXPacket is an ArtDMX (Output) packet.
type DMXPacket struct {
	Version  uint16
	Sequence uint8
	Physical uint8

	// Universe is the 15-bit port address: Net in the high byte, SubUni low.
	Universe uint16

	// Data aliases the decoded buffer.
	Data []byte
}

// OpCode implements Packet.
func (p *DMXPacket) OpCode() OpCode { return OpOutput }

// CommandPacket is any other known ArtNet packet. Its body is not parsed.
type CommandPacket struct {
	Op   OpCode
	Body []byte
}

// OpCode implements Packet.
func (p *CommandPacket) OpCode() OpCode { return p.Op }

// Decode parses one datagram. Returned slices alias b.
func Decode(b []byte) (Packet, error) {
	if len(b) < headerSize {
		return nil, &PacketError{Size: len(b), Err: ErrShortPacket}
	}
	if [8]byte(b[:8]) != ID {
		return nil, &PacketError{Size: len(b), Err: ErrBadID}
	}

	op := OpCode(binary.LittleEndian.Uint16(b[8:10]))
	if !op.Known() {
		return nil, &PacketError{Op: op, Size: len(b), Err: ErrUnknownOpCode}
	}
	if op != OpOutput {
		return &CommandPacket{Op: op, Body: b[headerSize:]}, nil
	}
	return decodeDMX(b)
}

func decodeDMX(b []byte) (*DMXPacket, error) {
	if len(b) < dmxHeaderSize {
		return nil, &PacketError{Op: OpOutput, Size: len(b), Err: ErrShortPacket}
	}

	length := int(binary.BigEndian.Uint16(b[16:18]))
	if length > MaxChannels {
		return nil, &PacketError{Op: OpOutput, Size: len(b), Err: ErrBadLength}
	}
	if dmxHeaderSize+length > len(b) {
		return nil, &PacketError{Op: OpOutput, Size: len(b), Err: ErrShortPacket}
	}

	return &DMXPacket{
		Version:  binary.BigEndian.Uint16(b[10:12]),
		Sequence: b[12],
		Physical: b[13],
		Universe: uint16(b[15]&0x7f)<<8 | uint16(b[14]),
		Data:     b[dmxHeaderSize : dmxHeaderSize+length],
	}, nil
}

// MarshalBinary encodes the packet. Odd data lengths are padded with a zero
// channel, as ArtDMX requires an even length.
func (p *DMXPacket) MarshalBinary() ([]byte, error) {
	if len(p.Data) > MaxChannels {
		return nil, fmt.Errorf("%w: %d channels", ErrBadLength, len(p.Data))
	}
	length := len(p.Data) + len(p.Data)%2

	b := make([]byte, dmxHeaderSize+length)
	copy(b, ID[:])
	binary.LittleEndian.PutUint16(b[8:10], uint16(OpOutput))
	version := p.Version
	if version == 0 {
		version = ProtocolVersion
	}
	binary.BigEndian.PutUint16(b[10:12], version)
	b[12] = p.Sequence
	b[13] = p.Physical
	b[14] = byte(p.Universe)
	b[15] = byte(p.Universe>>8) & 0x7f
	binary.BigEndian.PutUint16(b[16:18], uint16(length))
	copy(b[dmxHeaderSize:], p.Data)
	return b, nil
}

// EncodeDMX builds an ArtDMX datagram for universe with the given sequence.
func EncodeDMX(universe uint16, sequence uint8, data []byte) ([]byte, error) {
	p := DMXPacket{Sequence: sequence, Universe: universe, Data: data}
	return p.MarshalBinary()
}

// EncodePoll builds a minimal ArtPoll datagram.
func EncodePoll() []byte {
	b := make([]byte, 14)
	copy(b, ID[:])
	binary.LittleEndian.PutUint16(b[8:10], uint16(OpPoll))
	binary.BigEndian.PutUint16(b[10:12], ProtocolVersion)
	return b
}

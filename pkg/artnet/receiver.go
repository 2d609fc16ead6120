package artnet

import (
	"errors"
	"fmt"
	"net"
)

// MaxDatagramSize is the largest UDP payload over IPv4. Larger IPv6 datagrams
// are truncated to it, which is harmless: an ArtDMX packet is at most 530 bytes.
const MaxDatagramSize = 65507

// DefaultAddr is where the rig listens for ArtNet.
var DefaultAddr = fmt.Sprintf("0.0.0.0:%d", Port)

// Kind classifies the outcome of one Poll.
type Kind int

const (
	// Nothing means no datagram was queued. Routine, not an error.
	Nothing Kind = iota
	// Output means an ArtDMX packet arrived; Result.Payload holds its data.
	Output
	// DecodeError means a datagram arrived but could not be decoded.
	DecodeError
	// OtherCommand means a valid ArtNet packet other than ArtDMX arrived.
	OtherCommand
)

func (k Kind) String() string {
	switch k {
	case Nothing:
		return "nothing"
	case Output:
		return "output"
	case DecodeError:
		return "decode_error"
	case OtherCommand:
		return "other_command"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one Poll.
type Result struct {
	Kind Kind
	Addr net.Addr

	// Output fields. Payload is only valid until the next Poll.
	Payload  []byte
	Universe uint16
	Sequence uint8

	// OpCode is set for Output and OtherCommand.
	OpCode OpCode

	// Err is set for DecodeError.
	Err error
}

// Source is a datagram source that never blocks.
// TryRecv returns ErrNoDatagram when nothing is queued.
type Source interface {
	TryRecv(buf []byte) (int, net.Addr, error)
	LocalAddr() net.Addr
	Close() error
}

// Receiver polls a Source and decodes what it finds.
type Receiver struct {
	src Source
	buf []byte
}

// NewReceiver wraps src.
func NewReceiver(src Source) *Receiver {
	return &Receiver{
		src: src,
		buf: make([]byte, MaxDatagramSize),
	}
}

// Listen binds a non-blocking UDP socket on addr.
// The error wraps ErrBind; the control channel is essential, so callers should
// treat it as fatal.
func Listen(addr string) (*Receiver, error) {
	src, err := listenUDP(addr)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrBind, addr, err)
	}
	return NewReceiver(src), nil
}

// Poll takes at most one datagram from the source. It never blocks.
func (r *Receiver) Poll() Result {
	n, addr, err := r.src.TryRecv(r.buf)
	if errors.Is(err, ErrNoDatagram) {
		return Result{Kind: Nothing}
	}
	if err != nil {
		return Result{Kind: DecodeError, Addr: addr, Err: fmt.Errorf("artnet: read: %w", err)}
	}

	pkt, err := Decode(r.buf[:n])
	if err != nil {
		return Result{Kind: DecodeError, Addr: addr, Err: err}
	}

	switch p := pkt.(type) {
	case *DMXPacket:
		return Result{
			Kind:     Output,
			Addr:     addr,
			Payload:  p.Data,
			Universe: p.Universe,
			Sequence: p.Sequence,
			OpCode:   OpOutput,
		}
	default:
		return Result{Kind: OtherCommand, Addr: addr, OpCode: pkt.OpCode()}
	}
}

// LocalAddr returns the bound address.
func (r *Receiver) LocalAddr() net.Addr {
	return r.src.LocalAddr()
}

// Close releases the socket.
func (r *Receiver) Close() error {
	return r.src.Close()
}

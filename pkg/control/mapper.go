// Package control turns inbound ArtNet into flame state, one tick at a time.
package control

import (
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/artnet"
)

// Poller is the non-blocking datagram side of a tick.
type Poller interface {
	Poll() artnet.Result
}

// FrameApplier takes a DMX payload. *rig.Registry implements it.
type FrameApplier interface {
	ApplyFrame(payload []byte) int
}

// Stats counts tick outcomes since the mapper was created.
type Stats struct {
	Ticks        uint64
	Frames       uint64
	DecodeErrors uint64
	Other        uint64
}

// Mapper drives one control tick: poll once, then apply or log.
// It holds no control state of its own.
type Mapper struct {
	poller Poller
	frames FrameApplier
	logger *slog.Logger

	ticks        atomic.Uint64
	outputs      atomic.Uint64
	decodeErrors atomic.Uint64
	other        atomic.Uint64
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger for dropped datagrams.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// New creates a mapper reading from poller and writing to frames.
func New(poller Poller, frames FrameApplier, opts ...Option) *Mapper {
	m := &Mapper{
		poller: poller,
		frames: frames,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.With("component", "control")
	}
	return m
}

// Tick runs one poll and reports what it found.
func (m *Mapper) Tick() artnet.Kind {
	m.ticks.Add(1)
	res := m.poller.Poll()

	switch res.Kind {
	case artnet.Output:
		m.outputs.Add(1)
		m.frames.ApplyFrame(res.Payload)

	case artnet.DecodeError:
		m.decodeErrors.Add(1)
		m.logger.Warn("dropped datagram that is not valid artnet",
			"from", addrString(res.Addr),
			"error", res.Err)

	case artnet.OtherCommand:
		// Controllers see their own broadcast ArtPoll; routine on a shared network.
		m.other.Add(1)
		m.logger.Info("ignored artnet command",
			"from", addrString(res.Addr),
			"opcode", res.OpCode.String())
	}

	return res.Kind
}

// Stats returns the outcome counters. Safe to call from any goroutine.
func (m *Mapper) Stats() Stats {
	return Stats{
		Ticks:        m.ticks.Load(),
		Frames:       m.outputs.Load(),
		DecodeErrors: m.decodeErrors.Load(),
		Other:        m.other.Load(),
	}
}

func addrString(a net.Addr) string {
	if a == nil {
		return "unknown"
	}
	return a.String()
}

package control

import (
	"bytes"
	"errors"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/teslashibe/go-lightcurve/pkg/artnet"
	"github.com/teslashibe/go-lightcurve/pkg/geometry"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// scriptedPoller returns queued results, then Nothing.
type scriptedPoller struct {
	results []artnet.Result
	calls   int
}

func (p *scriptedPoller) Poll() artnet.Result {
	p.calls++
	if len(p.results) == 0 {
		return artnet.Result{Kind: artnet.Nothing}
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r
}

func newTestMapper(results ...artnet.Result) (*Mapper, *scriptedPoller, *rig.Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	poller := &scriptedPoller{results: results}
	reg := rig.NewRegistry(geometry.Build())
	return New(poller, reg, WithLogger(logger)), poller, reg, &buf
}

var sender = &net.UDPAddr{IP: net.IPv4(192, 168, 1, 20), Port: 6454}

func TestTick_OutputAppliesFrame(t *testing.T) {
	m, _, reg, logs := newTestMapper(artnet.Result{
		Kind:    artnet.Output,
		Addr:    sender,
		Payload: []byte{1, 200, 1, 10},
	})

	if kind := m.Tick(); kind != artnet.Output {
		t.Fatalf("Tick() = %v, want output", kind)
	}
	if got := reg.State(0); got != (rig.ControlState{Switch: true, Flow: 200}) {
		t.Errorf("face 0 = %+v", got)
	}
	if got := reg.State(1); got != (rig.ControlState{Switch: true, Flow: 10}) {
		t.Errorf("face 1 = %+v", got)
	}
	if got := reg.State(2); got != (rig.ControlState{Switch: false, Flow: 255}) {
		t.Errorf("face 2 changed: %+v", got)
	}
	if logs.Len() != 0 {
		t.Errorf("output frames should not log, got %q", logs.String())
	}
}

func TestTick_DecodeErrorLeavesStateAndLogs(t *testing.T) {
	m, _, reg, logs := newTestMapper(artnet.Result{
		Kind: artnet.DecodeError,
		Addr: sender,
		Err:  &artnet.PacketError{Size: 4, Err: artnet.ErrShortPacket},
	})
	before := reg.States()

	if kind := m.Tick(); kind != artnet.DecodeError {
		t.Fatalf("Tick() = %v, want decode_error", kind)
	}
	if reg.States() != before {
		t.Error("decode error changed control state")
	}

	out := logs.String()
	if !strings.Contains(out, "192.168.1.20:6454") {
		t.Errorf("log missing sender: %q", out)
	}
	if !strings.Contains(out, "packet too short") {
		t.Errorf("log missing error: %q", out)
	}
}

func TestTick_OtherCommandLogsOpcode(t *testing.T) {
	m, _, reg, logs := newTestMapper(artnet.Result{
		Kind:   artnet.OtherCommand,
		Addr:   sender,
		OpCode: artnet.OpPoll,
	})
	before := reg.States()

	m.Tick()
	if reg.States() != before {
		t.Error("other command changed control state")
	}
	if out := logs.String(); !strings.Contains(out, "opcode=Poll") || !strings.Contains(out, "192.168.1.20") {
		t.Errorf("unexpected log: %q", out)
	}
}

func TestTick_NothingIsSilent(t *testing.T) {
	m, poller, reg, logs := newTestMapper()
	before := reg.States()

	for i := 0; i < 10; i++ {
		if kind := m.Tick(); kind != artnet.Nothing {
			t.Fatalf("Tick() = %v, want nothing", kind)
		}
	}
	if poller.calls != 10 {
		t.Errorf("poll calls = %d, want one per tick", poller.calls)
	}
	if reg.States() != before {
		t.Error("idle ticks changed control state")
	}
	if logs.Len() != 0 {
		t.Errorf("idle ticks logged: %q", logs.String())
	}
}

func TestTick_OnePollPerTick(t *testing.T) {
	m, poller, reg, _ := newTestMapper(
		artnet.Result{Kind: artnet.Output, Payload: []byte{1, 1}},
		artnet.Result{Kind: artnet.Output, Payload: []byte{1, 2}},
	)

	m.Tick()
	if reg.State(0).Flow != 1 {
		t.Errorf("after first tick flow = %d, want 1", reg.State(0).Flow)
	}
	m.Tick()
	if reg.State(0).Flow != 2 {
		t.Errorf("after second tick flow = %d, want 2", reg.State(0).Flow)
	}
	if poller.calls != 2 {
		t.Errorf("poll calls = %d, want 2", poller.calls)
	}
}

func TestStats(t *testing.T) {
	m, _, _, _ := newTestMapper(
		artnet.Result{Kind: artnet.Output, Payload: []byte{1, 1}},
		artnet.Result{Kind: artnet.DecodeError, Err: errors.New("bad")},
		artnet.Result{Kind: artnet.OtherCommand, OpCode: artnet.OpSync},
		artnet.Result{Kind: artnet.Output, Payload: []byte{0, 0}},
	)
	for i := 0; i < 6; i++ {
		m.Tick()
	}

	want := Stats{Ticks: 6, Frames: 2, DecodeErrors: 1, Other: 1}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestTick_MissingSenderAddress(t *testing.T) {
	m, _, _, logs := newTestMapper(artnet.Result{Kind: artnet.DecodeError, Err: errors.New("bad")})
	m.Tick()
	if !strings.Contains(logs.String(), "from=unknown") {
		t.Errorf("unexpected log: %q", logs.String())
	}
}

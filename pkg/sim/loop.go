// Package sim runs the simulator's single-threaded tick loop: draw the current
// flame state, then take at most one datagram off the network and apply it.
package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/artnet"
	"github.com/teslashibe/go-lightcurve/pkg/control"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// Renderer draws one frame. It returns false once the user asked to close.
// Render must not keep frame after returning.
type Renderer interface {
	Render(frame []rig.Visual) bool
}

// Ticker is the network half of a tick. *control.Mapper implements it.
type Ticker interface {
	Tick() artnet.Kind
	Stats() control.Stats
}

// Config holds loop timing.
type Config struct {
	// Interval is the minimum time between ticks. Zero runs flat out, which
	// suits renderers that already block on vsync.
	Interval time.Duration

	// StatsInterval is how often receive counters are logged. Zero disables.
	StatsInterval time.Duration
}

// DefaultConfig returns a 60 Hz loop with stats every 30 seconds.
func DefaultConfig() Config {
	return Config{
		Interval:      16 * time.Millisecond,
		StatsInterval: 30 * time.Second,
	}
}

// Loop owns the registry for the lifetime of the simulation.
type Loop struct {
	cfg      Config
	registry *rig.Registry
	mapper   Ticker
	renderer Renderer
	logger   *slog.Logger

	ticks     uint64
	lastStats time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// NewLoop wires a registry, a mapper feeding it and a renderer reading it.
func NewLoop(cfg Config, registry *rig.Registry, mapper Ticker, renderer Renderer) *Loop {
	return &Loop{
		cfg:      cfg,
		registry: registry,
		mapper:   mapper,
		renderer: renderer,
		logger:   log.With("component", "sim"),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Step runs one tick and reports whether the loop should continue.
func (l *Loop) Step() bool {
	if !l.renderer.Render(l.registry.Visuals()) {
		return false
	}
	l.mapper.Tick()
	l.ticks++
	return true
}

// Run ticks until the renderer asks to close or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("simulation loop started", "interval", l.cfg.Interval)
	l.lastStats = l.now()

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Info("simulation loop stopped", "ticks", humanize.Comma(int64(l.ticks)))
			return err
		}

		start := l.now()
		if !l.Step() {
			l.logger.Info("renderer closed", "ticks", humanize.Comma(int64(l.ticks)))
			return nil
		}
		l.maybeLogStats(start)

		if l.cfg.Interval > 0 {
			if elapsed := l.now().Sub(start); elapsed < l.cfg.Interval {
				l.sleep(l.cfg.Interval - elapsed)
			}
		}
	}
}

// Ticks returns how many ticks have completed.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) maybeLogStats(now time.Time) {
	if l.cfg.StatsInterval <= 0 || now.Sub(l.lastStats) < l.cfg.StatsInterval {
		return
	}
	l.lastStats = now

	s := l.mapper.Stats()
	on := 0
	for _, st := range l.registry.States() {
		if st.Switch {
			on++
		}
	}
	l.logger.Info("artnet receive stats",
		"ticks", humanize.Comma(int64(s.Ticks)),
		"frames", humanize.Comma(int64(s.Frames)),
		"decode_errors", humanize.Comma(int64(s.DecodeErrors)),
		"other_commands", humanize.Comma(int64(s.Other)),
		"flames_on", on)
}

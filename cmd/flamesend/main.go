// flamesend - plays a flame pattern to an ArtNet node or the simulator
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/teslashibe/go-lightcurve/internal/config"
	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/artnet"
	"github.com/teslashibe/go-lightcurve/pkg/pattern"
)

type options struct {
	target   string
	pattern  string
	fps      int
	duration time.Duration
	universe uint
	seed     int64
	logLevel string
}

func main() {
	opts := parseFlags()
	log.Init(opts.logLevel)

	p, err := pattern.New(opts.pattern, opts.seed)
	if err != nil {
		log.Error("bad pattern", "error", err)
		os.Exit(2)
	}
	if opts.fps <= 0 || opts.universe > 0x7fff {
		log.Error("bad flags", "fps", opts.fps, "universe", opts.universe)
		os.Exit(2)
	}

	conn, err := net.Dial("udp", opts.target)
	if err != nil {
		log.Error("cannot reach target", "target", opts.target, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if opts.duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	s := &sender{conn: conn, universe: uint16(opts.universe)}
	log.Info("sending pattern",
		"pattern", opts.pattern,
		"target", opts.target,
		"fps", opts.fps,
		"universe", opts.universe)

	s.play(ctx, p, time.Second/time.Duration(opts.fps))

	// Leave the rig dark.
	s.send(pattern.Stop(0))
	log.Info("done", "frames", humanize.Comma(int64(s.frames)), "bytes", humanize.Bytes(s.bytes))
}

type sender struct {
	conn     net.Conn
	universe uint16
	sequence uint8
	frames   uint64
	bytes    uint64
}

// play sends frames at a fixed rate until ctx is done.
func (s *sender) play(ctx context.Context, p pattern.Pattern, interval time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.send(p.Frame(time.Since(start)))
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *sender) send(f pattern.Frame) {
	pkt, err := artnet.EncodeDMX(s.universe, s.sequence, f.Payload())
	if err != nil {
		log.Error("encode frame", "error", err)
		return
	}
	n, err := s.conn.Write(pkt)
	if err != nil {
		// The simulator may not be up yet; keep going.
		log.Debug("send failed", "error", err)
		return
	}
	s.sequence++
	s.frames++
	s.bytes += uint64(n)
}

// parseFlags parses command line flags over environment defaults.
func parseFlags() options {
	var o options
	flag.StringVar(&o.target, "target", config.Target(), "ArtNet destination host:port (LIGHTCURVE_TARGET)")
	flag.StringVar(&o.pattern, "pattern", "pulse", fmt.Sprintf("Pattern: %s", strings.Join(pattern.Names(), ", ")))
	flag.IntVar(&o.fps, "fps", 25, "Frames per second")
	flag.DurationVar(&o.duration, "duration", 0, "How long to play, 0 until interrupted")
	flag.UintVar(&o.universe, "universe", 0, "ArtNet universe (15 bits)")
	flag.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "Seed for random patterns")
	flag.StringVar(&o.logLevel, "log-level", config.LogLevel(), "Log level (LOG_LEVEL)")
	flag.Parse()
	return o
}

// Light Curve simulator - draws the 30-flame rig and drives it from ArtNet
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teslashibe/go-lightcurve/internal/config"
	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/artnet"
	"github.com/teslashibe/go-lightcurve/pkg/control"
	"github.com/teslashibe/go-lightcurve/pkg/geometry"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
	"github.com/teslashibe/go-lightcurve/pkg/sim"
	"github.com/teslashibe/go-lightcurve/pkg/web"
)

type options struct {
	artnetAddr string
	webPort    string
	tick       time.Duration
	stats      time.Duration
	seed       int64
	logLevel   string
}

func main() {
	opts := parseFlags()
	log.Init(opts.logLevel)

	receiver, err := artnet.Listen(opts.artnetAddr)
	if err != nil {
		log.Error("cannot start artnet receiver", "addr", opts.artnetAddr, "error", err)
		os.Exit(1)
	}
	defer receiver.Close()
	log.Info("listening for artnet", "addr", receiver.LocalAddr().String())

	model := geometry.Build()
	registry := rig.NewRegistry(model, rig.WithPaletteSeed(opts.seed))
	mapper := control.New(receiver, registry)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var renderer sim.Renderer
	if opts.webPort != "" {
		var webOpts []web.Option
		webOpts = append(webOpts, web.WithStats(mapper.Stats), web.WithStatsInterval(opts.stats))
		if log.ParseLevel(opts.logLevel) <= slog.LevelDebug {
			webOpts = append(webOpts, web.WithAccessLog())
		}
		srv := web.NewServer(opts.webPort, registry, webOpts...)
		srv.StartAsync()
		go func() {
			<-ctx.Done()
			if err := srv.Shutdown(); err != nil {
				log.Warn("web shutdown", "error", err)
			}
		}()
		renderer = srv
	} else {
		log.Info("web disabled, running headless")
		renderer = sim.NewHeadless(ctx)
	}

	loop := sim.NewLoop(sim.Config{
		Interval:      opts.tick,
		StatsInterval: opts.stats,
	}, registry, mapper, renderer)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("simulation stopped", "error", err)
		os.Exit(1)
	}
	log.Info("goodbye")
}

// parseFlags parses command line flags over environment defaults.
func parseFlags() options {
	var o options
	flag.StringVar(&o.artnetAddr, "artnet", config.ArtNetAddr(), "ArtNet listen address (ARTNET_ADDR)")
	flag.StringVar(&o.webPort, "web", config.WebPort(), "Web port, empty to run headless (WEB_PORT)")
	flag.DurationVar(&o.tick, "tick", config.EnvDuration("LIGHTCURVE_TICK", config.DefaultTick), "Minimum time between ticks")
	flag.DurationVar(&o.stats, "stats", config.EnvDuration("LIGHTCURVE_STATS", config.DefaultStats), "Receive stats log interval, 0 to disable")
	flag.Int64Var(&o.seed, "seed", config.PaletteSeed(), "Panel color seed (PALETTE_SEED)")
	flag.StringVar(&o.logLevel, "log-level", config.LogLevel(), "Log level: debug, info, warn, error (LOG_LEVEL)")
	flag.Parse()
	return o
}

// Package web serves the simulator over HTTP: a JSON API for the static rig
// and the current flame state, and a websocket that streams every changed frame.
//
// Server implements sim.Renderer. It never touches the registry after
// construction; Render copies each frame into a snapshot the handlers read.
package web

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/control"
	"github.com/teslashibe/go-lightcurve/pkg/hub"
	"github.com/teslashibe/go-lightcurve/pkg/protocol"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// Server is the web render adapter
type Server struct {
	app      *fiber.App
	port     string
	instance string
	logger   *slog.Logger

	// Static, built once
	geometry protocol.GeometryData
	greeting hub.Message

	// Latest rendered frame
	mu     sync.RWMutex
	frame  []rig.Visual
	frames uint64

	stats         func() control.Stats
	statsInterval time.Duration
	lastStats     time.Time
	now           func() time.Time

	// Hub for websocket broadcast
	facesHub *hub.Hub
	publish  func(v interface{}) error

	closed atomic.Bool
}

// Option configures a Server.
type Option func(*Server)

// WithStats exposes receive counters on /api/stats. The function is called
// from HTTP goroutines and must be safe for that; *control.Mapper.Stats is.
func WithStats(fn func() control.Stats) Option {
	return func(s *Server) {
		s.stats = fn
	}
}

// WithStatsInterval pushes a stats message to viewers every d. Zero disables.
func WithStatsInterval(d time.Duration) Option {
	return func(s *Server) {
		s.statsInterval = d
	}
}

// WithAccessLog logs every HTTP request.
func WithAccessLog() Option {
	return func(s *Server) {
		s.app.Use(logger.New())
	}
}

// NewServer creates a web server for the rig held by reg. Only the static
// geometry and colors are read from reg.
func NewServer(port string, reg *rig.Registry, opts ...Option) *Server {
	s := &Server{
		port:     port,
		instance: uuid.NewString(),
		logger:   log.With("component", "web"),
		geometry: protocol.NewGeometryData(reg),
		frame:    reg.Visuals(),
		facesHub: hub.New("faces"),
		now:      time.Now,
	}
	s.publish = s.facesHub.BroadcastJSON

	if msg, err := protocol.NewGeometryMessage(reg); err != nil {
		s.logger.Warn("encode geometry message", "error", err)
	} else if s.greeting, err = hub.Encode(msg); err != nil {
		s.logger.Warn("encode geometry message", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Light Curve Simulator",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	// CORS for local development
	app.Use(cors.New())

	s.app = app
	for _, opt := range opts {
		opt(s)
	}

	// API routes
	api := app.Group("/api")
	api.Get("/healthz", s.handleHealth)
	api.Get("/geometry", s.handleGeometry)
	api.Get("/faces", s.handleFaces)
	api.Get("/faces/:id", s.handleFace)
	api.Get("/stats", s.handleStats)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/faces", websocket.New(s.handleFacesWS))

	return s
}

// Start starts the hub and serves until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("web server listening", "url", "http://localhost:"+s.port, "instance", s.instance)
	go s.facesHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("web server error", "error", err)
		}
	}()
}

// Render implements sim.Renderer. It keeps a copy of frame and broadcasts it
// when any face state changed. It returns false after Shutdown.
func (s *Server) Render(frame []rig.Visual) bool {
	if s.closed.Load() {
		return false
	}

	s.mu.Lock()
	changed := s.frames == 0 || len(frame) != len(s.frame)
	if !changed {
		for i := range frame {
			if frame[i].State != s.frame[i].State {
				changed = true
				break
			}
		}
	}
	s.frame = append(s.frame[:0], frame...)
	s.frames++
	n := s.frames
	s.mu.Unlock()

	if changed {
		s.broadcastFaces(n, frame)
	}
	s.maybeBroadcastStats()
	return true
}

func (s *Server) broadcastFaces(n uint64, frame []rig.Visual) {
	msg, err := protocol.NewFacesMessage(n, frame)
	if err == nil {
		err = s.publish(msg)
	}
	if err != nil {
		s.logger.Warn("encode faces message", "error", err)
	}
}

// maybeBroadcastStats runs on the render goroutine only.
func (s *Server) maybeBroadcastStats() {
	if s.statsInterval <= 0 {
		return
	}
	now := s.now()
	if s.lastStats.IsZero() {
		s.lastStats = now
		return
	}
	if now.Sub(s.lastStats) < s.statsInterval {
		return
	}
	s.lastStats = now

	msg, err := protocol.NewStatsMessage(s.statsData())
	if err == nil {
		err = s.publish(msg)
	}
	if err != nil {
		s.logger.Warn("encode stats message", "error", err)
	}
}

// snapshot returns a copy of the latest frame and its render count.
func (s *Server) snapshot() ([]rig.Visual, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]rig.Visual(nil), s.frame...), s.frames
}

// Instance returns the ID reported on /api/stats and /api/healthz.
func (s *Server) Instance() string {
	return s.instance
}

// Shutdown stops the server. The next Render returns false.
func (s *Server) Shutdown() error {
	s.closed.Store(true)
	s.facesHub.Stop()
	return s.app.Shutdown()
}

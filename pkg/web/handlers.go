package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-lightcurve/pkg/hub"
	"github.com/teslashibe/go-lightcurve/pkg/protocol"
)

// handleHealth reports liveness
func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"instance":    s.instance,
		"hub_running": s.facesHub.IsRunning(),
	})
}

// handleGeometry returns the static rig
func (s *Server) handleGeometry(c *fiber.Ctx) error {
	return c.JSON(s.geometry)
}

// handleFaces returns the latest frame
func (s *Server) handleFaces(c *fiber.Ctx) error {
	frame, n := s.snapshot()
	return c.JSON(protocol.NewFacesData(n, frame))
}

// handleFace returns one face of the latest frame
func (s *Server) handleFace(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "face id must be an integer",
		})
	}

	frame, _ := s.snapshot()
	if id < 0 || id >= len(frame) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no such face",
			"faces": len(frame),
		})
	}
	return c.JSON(protocol.NewFaceState(frame[id]))
}

// handleStats returns receive counters
func (s *Server) handleStats(c *fiber.Ctx) error {
	return c.JSON(s.statsData())
}

func (s *Server) statsData() protocol.StatsData {
	frame, _ := s.snapshot()
	out := protocol.StatsData{
		Instance: s.instance,
		Clients:  s.facesHub.ClientCount(),
		Dropped:  s.facesHub.Dropped(),
	}
	for _, v := range frame {
		if v.State.Switch {
			out.FlamesOn++
		}
	}
	if s.stats != nil {
		st := s.stats()
		out.Ticks = st.Ticks
		out.Frames = st.Frames
		out.DecodeErrors = st.DecodeErrors
		out.Other = st.Other
	}
	return out
}

// handleFacesWS streams frames. A new viewer gets the geometry and the
// current frame first.
func (s *Server) handleFacesWS(c *websocket.Conn) {
	var greeting []hub.Message
	if s.greeting.Data != nil {
		greeting = append(greeting, s.greeting)
	}
	frame, n := s.snapshot()
	if msg, err := protocol.NewFacesMessage(n, frame); err == nil {
		if m, err := hub.Encode(msg); err == nil {
			greeting = append(greeting, m)
		}
	}

	client := hub.NewClient(s.facesHub, c, greeting...)
	client.Run()
}

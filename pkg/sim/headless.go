package sim

import (
	"context"
	"log/slog"

	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/rig"
)

// Headless is a Renderer with no display. It logs flame switches at debug
// level and keeps rendering until its context is cancelled.
type Headless struct {
	ctx    context.Context
	logger *slog.Logger
	last   []rig.ControlState
}

// NewHeadless creates a headless renderer that closes when ctx is done.
func NewHeadless(ctx context.Context) *Headless {
	return &Headless{
		ctx:    ctx,
		logger: log.With("component", "headless"),
	}
}

// Render implements Renderer.
func (h *Headless) Render(frame []rig.Visual) bool {
	if h.last == nil {
		h.last = make([]rig.ControlState, len(frame))
		for i, v := range frame {
			h.last[i] = v.State
		}
	}

	for i, v := range frame {
		if v.State.Switch != h.last[i].Switch {
			h.logger.Debug("flame switched",
				"face", v.Face,
				"on", v.State.Switch,
				"flow", v.State.Flow)
		}
		h.last[i] = v.State
	}
	return h.ctx.Err() == nil
}

// flamewatch - prints the simulator's live flame state in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-lightcurve/internal/config"
	"github.com/teslashibe/go-lightcurve/internal/httpc"
	"github.com/teslashibe/go-lightcurve/internal/log"
	"github.com/teslashibe/go-lightcurve/pkg/protocol"
)

func main() {
	server := flag.String("server", config.Server(), "Simulator web address host:port (LIGHTCURVE_SERVER)")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level (LOG_LEVEL)")
	flag.Parse()
	log.Init(*logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var geo protocol.GeometryData
	if err := httpc.GetJSON(ctx, httpc.Client, config.ServerURL(*server)+"/api/geometry", &geo); err != nil {
		log.Error("cannot fetch geometry", "server", *server, "error", err)
		os.Exit(1)
	}
	printGeometry(geo)

	u := url.URL{Scheme: "ws", Host: *server, Path: "/ws/faces"}
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		log.Error("cannot open face stream", "url", u.String(), "error", err)
		os.Exit(1)
	}
	defer ws.Close()

	go func() {
		<-ctx.Done()
		ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		ws.Close()
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Error("face stream closed", "error", err)
				os.Exit(1)
			}
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Warn("bad message", "error", err)
			continue
		}
		switch msg.Type {
		case protocol.TypeFaces:
			var faces protocol.FacesData
			if err := msg.ParseData(&faces); err != nil {
				log.Warn("bad faces message", "error", err)
				continue
			}
			fmt.Println(formatFaces(faces))
		case protocol.TypeStats:
			var stats protocol.StatsData
			if err := msg.ParseData(&stats); err != nil {
				log.Warn("bad stats message", "error", err)
				continue
			}
			fmt.Println(formatStats(stats))
		}
	}
}

func printGeometry(geo protocol.GeometryData) {
	rings := map[string][]int{}
	var order []string
	for _, f := range geo.Faces {
		if _, ok := rings[f.Ring]; !ok {
			order = append(order, f.Ring)
		}
		rings[f.Ring] = append(rings[f.Ring], f.Face)
	}

	fmt.Printf("rig: %d vertices, %d faces\n", len(geo.Vertices), len(geo.Faces))
	for _, name := range order {
		fmt.Printf("  %-15s %v\n", name, rings[name])
	}
}

// flowGlyphs shades a lit flame by flow, lowest first.
var flowGlyphs = []rune("▁▂▃▄▅▆▇█")

// formatFaces renders one frame as a line: a glyph per face, dark faces as '.'.
func formatFaces(d protocol.FacesData) string {
	var b strings.Builder
	on := 0
	for _, f := range d.Faces {
		if !f.Switch {
			b.WriteByte('.')
			continue
		}
		on++
		b.WriteRune(flowGlyphs[int(f.Flow)*len(flowGlyphs)/256])
	}
	return fmt.Sprintf("%8s  %s  %2d on", humanize.Comma(int64(d.Tick)), b.String(), on)
}

// formatStats renders a stats message as one line.
func formatStats(d protocol.StatsData) string {
	return fmt.Sprintf("stats: %s frames, %s bad, %s other, %d on, %d viewers",
		humanize.Comma(int64(d.Frames)),
		humanize.Comma(int64(d.DecodeErrors)),
		humanize.Comma(int64(d.Other)),
		d.FlamesOn,
		d.Clients)
}

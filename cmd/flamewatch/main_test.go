package main

import (
	"strings"
	"testing"

	"github.com/teslashibe/go-lightcurve/pkg/protocol"
)

func TestFormatFaces(t *testing.T) {
	d := protocol.FacesData{
		Tick: 12345,
		Faces: []protocol.FaceState{
			{Face: 0},
			{Face: 1, Switch: true, Flow: 0},
			{Face: 2, Switch: true, Flow: 255},
		},
	}
	got := formatFaces(d)
	if !strings.Contains(got, "12,345") {
		t.Errorf("formatFaces() = %q, want humanized tick", got)
	}
	if !strings.Contains(got, ".▁█") {
		t.Errorf("formatFaces() = %q, want .▁█", got)
	}
	if !strings.HasSuffix(got, " 2 on") {
		t.Errorf("formatFaces() = %q, want 2 on", got)
	}
}

func TestFormatStats(t *testing.T) {
	got := formatStats(protocol.StatsData{Frames: 1200, DecodeErrors: 3, FlamesOn: 4, Clients: 1})
	want := "stats: 1,200 frames, 3 bad, 0 other, 4 on, 1 viewers"
	if got != want {
		t.Errorf("formatStats() = %q, want %q", got, want)
	}
}

package main

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/teslashibe/go-lightcurve/pkg/artnet"
	"github.com/teslashibe/go-lightcurve/pkg/pattern"
)

func TestSender_ReachesReceiver(t *testing.T) {
	recv, err := artnet.Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer recv.Close()

	conn, err := net.Dial("udp", recv.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	s := &sender{conn: conn, universe: 3}
	frame := pattern.Wave(0)
	s.send(frame)
	s.send(frame)

	var got []artnet.Result
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		if r := recv.Poll(); r.Kind == artnet.Output {
			got = append(got, r)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	if len(got) != 2 {
		t.Fatalf("received %d frames, want 2", len(got))
	}
	if got[0].Universe != 3 || got[0].Sequence != 0 || got[1].Sequence != 1 {
		t.Errorf("results = %+v", got)
	}
	if !bytes.Equal(got[1].Payload, frame.Payload()) {
		t.Errorf("payload = %v", got[1].Payload)
	}
	if s.frames != 2 {
		t.Errorf("frames = %d, want 2", s.frames)
	}
}

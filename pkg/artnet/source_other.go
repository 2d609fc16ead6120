//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package artnet

import (
	"errors"
	"net"
	"os"
	"time"
)

// pollWindow bounds a read where MSG_DONTWAIT is unavailable.
const pollWindow = time.Millisecond

func (s *udpSource) TryRecv(buf []byte) (int, net.Addr, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(pollWindow)); err != nil {
		return 0, nil, err
	}
	n, addr, err := s.conn.ReadFromUDP(buf)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return 0, nil, ErrNoDatagram
	}
	if err != nil {
		return 0, nil, err
	}
	return n, addr, nil
}

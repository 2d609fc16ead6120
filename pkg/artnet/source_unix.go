//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package artnet

import (
	"errors"
	"net"

	"golang.org/x/sys/unix"
)

// TryRecv issues a single MSG_DONTWAIT recvfrom on the socket. The callback
// returns true so the runtime poller never parks waiting for readability.
func (s *udpSource) TryRecv(buf []byte) (int, net.Addr, error) {
	raw, err := s.conn.SyscallConn()
	if err != nil {
		return 0, nil, err
	}

	var (
		n    int
		from unix.Sockaddr
		rerr error
	)
	if err := raw.Read(func(fd uintptr) bool {
		n, from, rerr = unix.Recvfrom(int(fd), buf, unix.MSG_DONTWAIT)
		return true
	}); err != nil {
		return 0, nil, err
	}

	if errors.Is(rerr, unix.EAGAIN) || errors.Is(rerr, unix.EWOULDBLOCK) {
		return 0, nil, ErrNoDatagram
	}
	if rerr != nil {
		return 0, nil, rerr
	}
	return n, sockaddrToUDP(from), nil
}

func sockaddrToUDP(sa unix.Sockaddr) net.Addr {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return &net.UDPAddr{IP: net.IPv4(a.Addr[0], a.Addr[1], a.Addr[2], a.Addr[3]), Port: a.Port}
	case *unix.SockaddrInet6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, a.Addr[:])
		return &net.UDPAddr{IP: ip, Port: a.Port}
	default:
		return nil
	}
}

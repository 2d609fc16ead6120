package artnet

import "net"

// udpSource is the production Source: a UDP socket read without waiting.
type udpSource struct {
	conn *net.UDPConn
}

func listenUDP(addr string) (*udpSource, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, err
	}
	return &udpSource{conn: conn}, nil
}

func (s *udpSource) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

func (s *udpSource) Close() error {
	return s.conn.Close()
}

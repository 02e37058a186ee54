package devserver

import (
	"fmt"
	"net"
)

// acquireListener binds the preferred port on loopback, falling back to
// any free port. Port acquisition is never a hard failure as long as the
// host has a free ephemeral port.
func acquireListener(preferred int) (net.Listener, error) {
	if preferred > 0 {
		if ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", preferred)); err == nil {
			return ln, nil
		}
	}
	return net.Listen("tcp", "127.0.0.1:0")
}

// freePort reserves a free loopback port number for the internal bundler
// server. The listener is closed before the port is handed over; the gap
// is acceptable for a local dev tool.
func freePort() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port, nil
}

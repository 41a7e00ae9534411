package utils

import (
	"fmt"
	"net"
	"strconv"
)

// NormalizeListenAddr accepts "host:port", ":port", or a bare port number and
// returns a host:port string suitable for net.Listen.
func NormalizeListenAddr(addr string) (string, error) {
	if _, err := strconv.Atoi(addr); err == nil {
		return ":" + addr, nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid listen address %q: %v", addr, err)
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("invalid port in listen address %q", addr)
	}

	return net.JoinHostPort(host, port), nil
}

// IsPortAvailable reports whether the port can currently be bound on host.
// Used before daemonizing the server, where a bind failure would otherwise
// only surface in the detached child's logs.
func IsPortAvailable(host string, port int) bool {
	Verbose("Checking if port %d is available on %s", port, host)
	listener, err := net.ListenTCP("tcp4", &net.TCPAddr{IP: net.ParseIP(host), Port: port})
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}

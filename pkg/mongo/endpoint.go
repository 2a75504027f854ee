package mongo

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// Endpoint identifies one database server. Two endpoints are the same
// registry key only when both Host and Port match exactly.
type Endpoint struct {
	Host string
	Port int
}

// NewEndpoint validates host and port without touching the network.
func NewEndpoint(host string, port int) (Endpoint, error) {
	if strings.TrimSpace(host) == "" {
		return Endpoint{}, ErrInvalidHost
	}
	if port < 1 || port > 65535 {
		return Endpoint{}, ErrInvalidPort
	}
	return Endpoint{Host: host, Port: port}, nil
}

// ParseEndpoint parses a "host:port" address.
// A port that is not an integer is reported as ErrInvalidPort.
func ParseEndpoint(addr string) (Endpoint, error) {
	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return Endpoint{}, errors.Join(ErrInvalidHost, err)
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return Endpoint{}, errors.Join(ErrInvalidPort, err)
	}
	return NewEndpoint(host, port)
}

// String returns the address in the form the driver expects in its host list.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

package addr

import (
	"net"

	"github.com/pkg/errors"
)

// ResolveHostAddress parses a `host:port` listen address into a net.TCPAddr. An empty host
// resolves to all interfaces.
func ResolveHostAddress(addr string) (*net.TCPAddr, error) {
	address, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not deduct host and port from %v", addr)
	}
	return address, nil
}

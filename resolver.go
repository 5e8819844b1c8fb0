package dohdns

import (
	"errors"
	"net"
	"sync/atomic"
)

var errAddrNotAvailable = errors.New("no address available for hostname")

// staticResolver maps the hostnames of configured endpoints to their fixed
// candidate addresses, rotating through them round-robin. It is used in
// place of plain DNS when connecting to the DoH servers themselves, since
// resolving a resolver's hostname can't rely on regular name resolution.
type staticResolver struct {
	hosts map[string]*hostAddrs
}

type hostAddrs struct {
	addrs []net.IP
	next  uint32
}

func newStaticResolver() *staticResolver {
	return &staticResolver{hosts: make(map[string]*hostAddrs)}
}

// register adds the candidate addresses for a hostname. Only called during
// client construction, the map is read-only once queries are made.
func (r *staticResolver) register(host string, addrs []net.IP) {
	if len(addrs) == 0 {
		return
	}
	r.hosts[host] = &hostAddrs{addrs: addrs}
}

// resolve returns the next candidate address for the given hostname,
// advancing the per-hostname cursor. The cursor is advanced atomically so
// concurrent resolutions each observe a distinct address, and it is never
// reset for the lifetime of the client.
func (r *staticResolver) resolve(host string) (net.IP, error) {
	h, ok := r.hosts[host]
	if !ok {
		return nil, errAddrNotAvailable
	}
	n := atomic.AddUint32(&h.next, 1) - 1
	return h.addrs[int(n)%len(h.addrs)], nil
}

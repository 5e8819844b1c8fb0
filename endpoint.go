package dohdns

import (
	"net"
	"time"
)

// Endpoint describes one DoH JSON server. Endpoints are immutable once the
// client has been built.
type Endpoint struct {
	// Hostname the HTTPS requests are sent to.
	Domain string

	// URL path of the JSON resolve API, without leading slash.
	Path string

	// Fixed candidate addresses for Domain, used in round-robin order for
	// new connections. If empty, the hostname is resolved with plain DNS.
	Addrs []net.IP

	// Timeout applied to each query sent to this endpoint. Defaults to 10
	// seconds if unset.
	Timeout time.Duration
}

const defaultTimeout = 10 * time.Second

// host returns the hostname part of Domain, stripping the port if one is
// present.
func (e Endpoint) host() string {
	if host, _, err := net.SplitHostPort(e.Domain); err == nil {
		return host
	}
	return e.Domain
}

// GoogleEndpoint returns the endpoint for Google's DoH server. Google
// doesn't answer queries sent to 8.8.8.8 or 8.8.4.4 directly, the request
// needs to go to the hostname dns.google, so both addresses are registered
// as fixed candidates for it.
func GoogleEndpoint(timeout time.Duration) Endpoint {
	return Endpoint{
		Domain: "dns.google",
		Path:   "resolve",
		Addrs: []net.IP{
			net.IPv4(8, 8, 8, 8),
			net.IPv4(8, 8, 4, 4),
		},
		Timeout: timeout,
	}
}

// CloudflareEndpoint returns the endpoint for Cloudflare's 1.1.1.1 DoH
// server. Cloudflare doesn't respond to ANY queries.
func CloudflareEndpoint(timeout time.Duration) Endpoint {
	return Endpoint{
		Domain:  "1.1.1.1",
		Path:    "dns-query",
		Timeout: timeout,
	}
}

// Cloudflare1001Endpoint returns the endpoint for Cloudflare's 1.0.0.1 DoH
// server. Cloudflare doesn't respond to ANY queries.
func Cloudflare1001Endpoint(timeout time.Duration) Endpoint {
	return Endpoint{
		Domain:  "1.0.0.1",
		Path:    "dns-query",
		Timeout: timeout,
	}
}

// DefaultEndpoints returns the default endpoint chain: Google with a 3
// second timeout, falling back to Cloudflare with 10 seconds.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		GoogleEndpoint(3 * time.Second),
		CloudflareEndpoint(10 * time.Second),
	}
}

package dohdns

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
	"golang.org/x/net/http2"
)

// tcpTransport returns an HTTP/2-capable transport for one endpoint. If the
// endpoint has fixed candidate addresses, connections are dialed to the next
// address from the static resolver while the TLS handshake keeps using the
// endpoint's hostname.
func tcpTransport(e Endpoint, resolver *staticResolver, tlsConfig *tls.Config) (http.RoundTripper, error) {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSClientConfig:       tlsConfig,
		DisableCompression:    true,
		ResponseHeaderTimeout: 10 * time.Second,
		IdleConnTimeout:       30 * time.Second,
	}
	// If we're using a custom tls.Config, HTTP2 isn't enabled by default in
	// the HTTP library. Turn it on for this transport.
	if tr.TLSClientConfig != nil {
		if err := http2.ConfigureTransport(tr); err != nil {
			return nil, err
		}
	}

	if len(e.Addrs) > 0 {
		d := new(net.Dialer)
		tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ip, err := resolver.resolve(host)
			if err != nil {
				return nil, err
			}
			return d.DialContext(ctx, network, net.JoinHostPort(ip.String(), port))
		}
	}
	return tr, nil
}

// quicTransport returns an HTTP/3 transport for one endpoint.
func quicTransport(e Endpoint, resolver *staticResolver, tlsConfig *tls.Config) (http.RoundTripper, error) {
	if tlsConfig == nil {
		tlsConfig = new(tls.Config)
	} else {
		tlsConfig = tlsConfig.Clone()
	}
	tlsConfig.ServerName = e.host()

	// When using a custom dialer, we have to track/close connections ourselves
	pool := new(udpConnPool)
	dialer := func(ctx context.Context, addr string, tlsConfig *tls.Config, config *quic.Config) (quic.EarlyConnection, error) {
		if len(e.Addrs) > 0 {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ip, err := resolver.resolve(host)
			if err != nil {
				return nil, err
			}
			addr = net.JoinHostPort(ip.String(), port)
		}
		return quicDial(ctx, e.host(), addr, tlsConfig, config, pool)
	}

	tr := &http3.RoundTripper{
		TLSClientConfig: tlsConfig,
		QuicConfig: &quic.Config{
			TokenStore: quic.NewLRUTokenStore(10, 10),
		},
		Dial: dialer,
	}
	return &http3ReliableRoundTripper{tr, pool}, nil
}

func quicDial(ctx context.Context, hostname, rAddr string, tlsConfig *tls.Config, config *quic.Config, pool *udpConnPool) (quic.EarlyConnection, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", rAddr)
	if err != nil {
		return nil, err
	}
	udpConn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, err
	}
	pool.add(udpConn)
	if tlsConfig.ServerName == "" {
		tlsConfig = tlsConfig.Clone()
		tlsConfig.ServerName = hostname
	}
	return quic.DialEarly(ctx, udpConn, udpAddr, tlsConfig, config)
}

// Wrapper for http3.RoundTripper due to https://github.com/quic-go/quic-go/issues/765
// This wrapper will transparently re-open expired connections. Should be removed once the issue
// has been fixed upstream.
type http3ReliableRoundTripper struct {
	*http3.RoundTripper
	pool *udpConnPool
}

func (r *http3ReliableRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.RoundTripper.RoundTrip(req)
	if netErr, ok := err.(net.Error); ok && (netErr.Timeout() || netErr.Temporary()) {
		r.pool.closeAll()
		r.RoundTripper.Close()
		resp, err = r.RoundTripper.RoundTrip(req)
	}
	return resp, err
}

// UDP connection pool. Also a workaround for for the http3.RoundTripper. When using a custom
// dialer that open its own UDP connections, http3.RoundTripper doesn't close them when the
// remote terminates a connection, or when calling Close(). So we have to keep track of the
// connections and close them all before calling Close() on the http3.RoundTripper.
type udpConnPool struct {
	conns []*net.UDPConn
	mu    sync.Mutex
}

func (p *udpConnPool) add(conn *net.UDPConn) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conns = append(p.conns, conn)
}

func (p *udpConnPool) closeAll() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.conns {
		conn.Close()
	}
	p.conns = nil
}

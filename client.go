package dohdns

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/jtacoma/uritemplates"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"golang.org/x/net/idna"
)

// queryTemplate is the URI template every query URL is built from, filled
// with the endpoint's domain and path plus the name and type parameters.
const queryTemplate = "https://{+domain}/{+path}{?name,type}"

// ClientOptions contains options used by the DoH client.
type ClientOptions struct {
	// Transport protocol to run HTTPS over. "quic" or "tcp", defaults to "tcp".
	Transport string

	TLSConfig *tls.Config
}

// Client is a DoH JSON API client. It queries the configured endpoints in
// order, failing over to the next one on transient errors. A client is safe
// for concurrent use.
type Client struct {
	endpoints []*endpointClient
}

// endpointClient is one configured endpoint with its HTTP client and the
// parsed URL template.
type endpointClient struct {
	endpoint Endpoint
	template *uritemplates.UriTemplate
	client   *http.Client
	metrics  *EndpointMetrics
}

// NewClient returns a client querying the given endpoints in order. It
// fails with ErrNoEndpoints if none are given.
func NewClient(opt ClientOptions, endpoints ...Endpoint) (*Client, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	// Candidate addresses of all endpoints share one resolver, cursors are
	// per-hostname and live as long as the client.
	resolver := newStaticResolver()
	for _, e := range endpoints {
		resolver.register(e.host(), e.Addrs)
	}

	c := &Client{}
	for _, e := range endpoints {
		if e.Timeout <= 0 {
			e.Timeout = defaultTimeout
		}
		template, err := uritemplates.Parse(queryTemplate)
		if err != nil {
			return nil, err
		}
		var tr http.RoundTripper
		switch opt.Transport {
		case "tcp", "":
			tr, err = tcpTransport(e, resolver, opt.TLSConfig)
		case "quic":
			tr, err = quicTransport(e, resolver, opt.TLSConfig)
		default:
			err = fmt.Errorf("unknown protocol: '%s'", opt.Transport)
		}
		if err != nil {
			return nil, err
		}
		c.endpoints = append(c.endpoints, &endpointClient{
			endpoint: e,
			template: template,
			client:   &http.Client{Transport: tr},
			metrics:  NewEndpointMetrics(e.Domain),
		})
	}
	return c, nil
}

// query sends one DoH query, trying each endpoint in catalog order until
// one succeeds or a terminal error occurs. Retryable failures are logged
// and swallowed, only the last one is returned once all endpoints have been
// tried.
func (c *Client) query(name string, rtype RType) (*response, error) {
	ascii, err := asciiName(name)
	if err != nil {
		return nil, &QueryError{Kind: KindInvalidName, Err: err}
	}

	var lastErr error
	for _, e := range c.endpoints {
		res, err := e.do(ascii, rtype)
		if err != nil {
			if qerr, ok := err.(*QueryError); ok && qerr.Kind.Retryable() {
				logger(e.endpoint.Domain, ascii, rtype).WithError(err).Debug("retrying on next endpoint")
				lastErr = err
				continue
			}
			return nil, err
		}
		return res, nil
	}
	return nil, lastErr
}

// do sends the query to a single endpoint and classifies the outcome.
func (e *endpointClient) do(name string, rtype RType) (*response, error) {
	e.metrics.query.Add(1)
	u, err := e.template.Expand(map[string]interface{}{
		"domain": e.endpoint.Domain,
		"path":   e.endpoint.Path,
		"name":   name,
		"type":   rtype.Name,
	})
	if err != nil {
		e.metrics.err.Add("template", 1)
		return nil, &QueryError{Kind: KindInvalidEndpoint, Err: err}
	}

	// The deadline covers the whole exchange. A response arriving after it
	// expired is abandoned by the cancelled context and never observed.
	ctx, cancel := context.WithTimeout(context.Background(), e.endpoint.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		e.metrics.err.Add("http", 1)
		return nil, &QueryError{Kind: KindInvalidEndpoint, Err: errors.Wrapf(err, "building request for '%s'", u)}
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := e.client.Do(req)
	if err != nil {
		// Timeouts and transport failures alike, both retryable.
		e.metrics.err.Add("get", 1)
		return nil, &QueryError{Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.metrics.err.Add(fmt.Sprintf("http%d", resp.StatusCode), 1)
		return nil, &QueryError{Kind: kindFromHTTPStatus(resp.StatusCode)}
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		e.metrics.err.Add("read", 1)
		return nil, &QueryError{Kind: KindReadResponse, Err: err}
	}
	res := new(response)
	if err := json.Unmarshal(body, res); err != nil {
		e.metrics.err.Add("parse", 1)
		return nil, &QueryError{Kind: KindParseResponse, Err: err}
	}
	e.metrics.response.Add(fmt.Sprintf("status%d", res.Status), 1)
	return res, nil
}

// asciiName converts a queried name to its punycode (ASCII) form and
// validates it.
func asciiName(name string) (string, error) {
	ascii, err := idna.ToASCII(name)
	if err != nil {
		return "", err
	}
	if _, ok := dns.IsDomainName(ascii); !ok {
		return "", fmt.Errorf("'%s' is not a valid domain name", name)
	}
	return ascii, nil
}

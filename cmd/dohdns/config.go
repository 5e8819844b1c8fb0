package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	dohdns "github.com/folbricht/dohdns"
)

type config struct {
	Title     string
	Endpoints []endpointConfig `toml:"endpoints"`
}

type endpointConfig struct {
	Domain  string   `toml:"domain"`
	Path    string   `toml:"path"`
	Addrs   []string `toml:"addrs"`
	Timeout string   `toml:"timeout"`
}

// loadConfig reads a config file and returns the decoded structure.
func loadConfig(name string) (config, error) {
	var c config
	f, err := os.Open(name)
	if err != nil {
		return c, err
	}
	defer f.Close()
	_, err = toml.NewDecoder(f).Decode(&c)
	return c, err
}

// endpoints converts the decoded config into the endpoint list handed to
// the client, in file order.
func (c config) endpoints() ([]dohdns.Endpoint, error) {
	var endpoints []dohdns.Endpoint
	for _, e := range c.Endpoints {
		endpoint := dohdns.Endpoint{
			Domain: e.Domain,
			Path:   e.Path,
		}
		for _, addr := range e.Addrs {
			ip := net.ParseIP(addr)
			if ip == nil {
				return nil, fmt.Errorf("invalid address '%s' for endpoint '%s'", addr, e.Domain)
			}
			endpoint.Addrs = append(endpoint.Addrs, ip)
		}
		if e.Timeout != "" {
			timeout, err := time.ParseDuration(e.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout for endpoint '%s': %v", e.Domain, err)
			}
			endpoint.Timeout = timeout
		}
		endpoints = append(endpoints, endpoint)
	}
	return endpoints, nil
}

package dohdns

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticResolverRoundRobin(t *testing.T) {
	a := net.IPv4(8, 8, 8, 8)
	b := net.IPv4(8, 8, 4, 4)
	r := newStaticResolver()
	r.register("dns.google", []net.IP{a, b})

	// Odd resolutions return the first address, even ones the second,
	// indefinitely. The cursor is never reset.
	for i := 0; i < 10; i++ {
		ip, err := r.resolve("dns.google")
		require.NoError(t, err)
		if i%2 == 0 {
			require.Equal(t, a, ip)
		} else {
			require.Equal(t, b, ip)
		}
	}
}

func TestStaticResolverThreeAddrs(t *testing.T) {
	addrs := []net.IP{
		net.IPv4(192, 0, 2, 1),
		net.IPv4(192, 0, 2, 2),
		net.IPv4(192, 0, 2, 3),
	}
	r := newStaticResolver()
	r.register("doh.test", addrs)

	for i := 0; i < 9; i++ {
		ip, err := r.resolve("doh.test")
		require.NoError(t, err)
		require.Equal(t, addrs[i%3], ip)
	}
}

func TestStaticResolverUnknownHost(t *testing.T) {
	r := newStaticResolver()
	r.register("known", []net.IP{net.IPv4(192, 0, 2, 1)})

	_, err := r.resolve("unknown")
	require.ErrorIs(t, err, errAddrNotAvailable)

	// Registering an empty address list is the same as not registering.
	r.register("empty", nil)
	_, err = r.resolve("empty")
	require.ErrorIs(t, err, errAddrNotAvailable)
}

func TestStaticResolverConcurrent(t *testing.T) {
	a := net.IPv4(192, 0, 2, 1)
	b := net.IPv4(192, 0, 2, 2)
	r := newStaticResolver()
	r.register("doh.test", []net.IP{a, b})

	const n = 100
	results := make([]net.IP, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.resolve("doh.test")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	// Concurrent resolutions must not duplicate or skip addresses, so each
	// one has to come up exactly half the time.
	var countA, countB int
	for _, ip := range results {
		switch {
		case ip.Equal(a):
			countA++
		case ip.Equal(b):
			countB++
		}
	}
	require.Equal(t, n/2, countA)
	require.Equal(t, n/2, countB)
}

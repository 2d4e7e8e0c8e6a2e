// Package publicip detects the public IPv4 address of the machine
// using HTTP echo services, DNS over TLS echo services, or both.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync/atomic"

	"github.com/qdm12/ip-tracker/pkg/publicip/dns"
	"github.com/qdm12/ip-tracker/pkg/publicip/http"
)

type ipFetcher interface {
	IP(ctx context.Context) (ip netip.Addr, err error)
}

// Fetcher alternates between its enabled sub-fetchers on each call.
type Fetcher struct {
	fetchers []ipFetcher
	calls    atomic.Uint32
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

func NewFetcher(dnsSettings DNSSettings, httpSettings HTTPSettings) (f *Fetcher, err error) {
	f = new(Fetcher)

	if dnsSettings.Enabled {
		dnsFetcher, err := dns.New(dnsSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating DNS fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, dnsFetcher)
	}

	if httpSettings.Enabled {
		httpFetcher, err := http.New(httpSettings.Client, httpSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating HTTP fetcher: %w", err)
		}
		f.fetchers = append(f.fetchers, httpFetcher)
	}

	if len(f.fetchers) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFetchTypeSpecified)
	}

	return f, nil
}

// IP returns the public IPv4 address of the machine.
func (f *Fetcher) IP(ctx context.Context) (ip netip.Addr, err error) {
	call := f.calls.Add(1)
	fetcher := f.fetchers[int(call)%len(f.fetchers)]
	return fetcher.IP(ctx)
}

package dns

import (
	"context"
	"fmt"
	"net/netip"
)

// IP returns the public IPv4 address as seen by the next DNS provider.
func (f *Fetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	f.mutex.Lock()
	server := f.servers[f.index]
	f.index = (f.index + 1) % len(f.servers)
	f.mutex.Unlock()

	publicIP, err = fetch(ctx, server.client, server.data)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("fetching from %s: %w", server.provider, err)
	}
	return publicIP, nil
}

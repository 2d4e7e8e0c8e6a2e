package http

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// IP returns the public IPv4 address as seen by the next
// provider which did not ban the caller.
func (f *Fetcher) IP(ctx context.Context) (publicIP netip.Addr, err error) {
	index, url, ok := f.ring.next()
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrBanned, f.ring.bansSummary())
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	publicIP, err = fetch(ctx, f.client, url)
	switch {
	case err == nil:
		return publicIP, nil
	case errors.Is(err, ErrBanned):
		reason := strings.TrimPrefix(err.Error(), ErrBanned.Error()+": ")
		f.ring.ban(index, reason)
	}
	return netip.Addr{}, err
}

package dns

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
)

// Provider is a DNS over TLS server answering a query
// with the public IP address of the client.
type Provider string

const (
	Cloudflare Provider = "cloudflare"
	OpenDNS    Provider = "opendns"
)

// providerData is the TLS endpoint and question to ask a provider.
type providerData struct {
	IPv4    netip.Addr
	TLSName string
	fqdn    string
	class   dns.Class
	qType   dns.Type
}

var echoProviders = map[Provider]providerData{ //nolint:gochecknoglobals
	Cloudflare: {
		IPv4:    netip.AddrFrom4([4]byte{1, 1, 1, 1}),
		TLSName: "cloudflare-dns.com",
		fqdn:    "whoami.cloudflare.",
		class:   dns.ClassCHAOS,
		qType:   dns.Type(dns.TypeTXT),
	},
	OpenDNS: {
		IPv4:    netip.AddrFrom4([4]byte{208, 67, 222, 222}),
		TLSName: "dns.opendns.com",
		fqdn:    "myip.opendns.com.",
		class:   dns.ClassINET,
		qType:   dns.Type(dns.TypeA),
	},
}

// ListProviders returns the DNS echo providers in their query order.
func ListProviders() []Provider {
	return []Provider{Cloudflare, OpenDNS}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	if _, ok := echoProviders[provider]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return nil
}

// data panics for a provider not validated with ValidateProvider.
func (p Provider) data() providerData {
	data, ok := echoProviders[p]
	if !ok {
		panic(`no data for DNS echo provider "` + string(p) + `"`)
	}
	return data
}

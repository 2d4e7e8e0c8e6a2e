package dns

import (
	"crypto/tls"
	"sync"

	"github.com/miekg/dns"
)

// Fetcher fetches the public IPv4 address using DNS over TLS,
// cycling through its providers on each call.
type Fetcher struct {
	mutex   sync.Mutex
	index   int
	servers []server
}

type server struct {
	provider Provider
	data     providerData
	client   Client
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	f = &Fetcher{
		servers: make([]server, len(settings.providers)),
	}
	for i, provider := range settings.providers {
		data := provider.data()
		f.servers[i] = server{
			provider: provider,
			data:     data,
			client: &dns.Client{
				Net:     "tcp4-tls",
				Timeout: settings.timeout,
				TLSConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
					ServerName: data.TLSName,
				},
			},
		}
	}

	return f, nil
}

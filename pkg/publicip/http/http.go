package http

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fetcher fetches the public IPv4 address from HTTP echo services.
// Each call uses the next provider URL, and providers which answered
// with a ban status are skipped from then on.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	ring    *providerRing
}

func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(settings.providers))
	for i, provider := range settings.providers {
		urls[i] = provider.url()
	}

	return &Fetcher{
		client:  client,
		timeout: settings.timeout,
		ring:    newProviderRing(urls),
	}, nil
}

type providerRing struct {
	mutex sync.Mutex
	// last is the index of the URL last handed out, -1 initially.
	last int
	urls []string
	// bans maps URL indices to the reason they were banned.
	bans map[int]string
}

func newProviderRing(urls []string) *providerRing {
	return &providerRing{
		last: -1,
		urls: urls,
		bans: make(map[int]string, len(urls)),
	}
}

// next returns the index and URL of the next provider not banned,
// or ok as false if every provider is banned.
func (r *providerRing) next() (index int, url string, ok bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for range r.urls {
		r.last = (r.last + 1) % len(r.urls)
		if _, banned := r.bans[r.last]; !banned {
			return r.last, r.urls[r.last], true
		}
	}
	return 0, "", false
}

func (r *providerRing) ban(index int, reason string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.bans[index] = reason
}

// bansSummary returns the ban reasons with their URL, sorted.
func (r *providerRing) bansSummary() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	summaries := make([]string, 0, len(r.bans))
	for index, reason := range r.bans {
		summaries = append(summaries, reason+" ("+r.urls[index]+")")
	}
	sort.Strings(summaries)
	return strings.Join(summaries, ", ")
}

package geolocation

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	name     Provider
	timeout  time.Duration
	provider provider
}

func New(client *http.Client, options ...Option) (c *Client, err error) {
	var settings settings
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	settings.setDefaults()

	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings for provider %s: %w",
			settings.provider, err)
	}

	var provider provider
	switch settings.provider {
	case Geoapify:
		provider = newGeoapify(client, settings.baseURL, settings.apiKey)
	case MaxMind:
		provider, err = newMaxMind(settings.maxMindCityPath, settings.maxMindASNPath, time.Now)
	case IP2Location:
		provider, err = newIP2Location(settings.ip2LocationPath)
	default:
		panic(fmt.Sprintf("provider %s not implemented", settings.provider))
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s provider: %w", settings.provider, err)
	}

	return &Client{
		name:     settings.provider,
		timeout:  settings.timeout,
		provider: provider,
	}, nil
}

func (c *Client) String() string {
	return string(c.name)
}

// Get returns IP information for the given IPv4 address.
// If ip is empty, information for the caller's own IP address
// is returned instead, if the provider supports it.
func (c *Client) Get(ctx context.Context, ip string) (payload Payload, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.provider.get(ctx, ip)
}

// Close releases database files held by offline providers.
func (c *Client) Close() (err error) {
	return c.provider.close()
}

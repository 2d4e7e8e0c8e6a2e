// Package shoutrrr forwards messages shown to the user, such as
// error banners, to the shoutrrr notification services configured.
package shoutrrr

import (
	"fmt"
	"net/url"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Client struct {
	router   *router.ServiceRouter
	services []string
	logger   Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	services := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		u, err := url.Parse(address)
		if err != nil {
			return nil, fmt.Errorf("parsing address %d: %w", i+1, err)
		}
		services[i] = u.Scheme
		addresses[i] = withDefaultTitle(u, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		router:   serviceRouter,
		services: services,
		logger:   settings.Logger,
	}, nil
}

// Notify sends the message to every service configured.
// Sending errors are logged and not returned.
func (c *Client) Notify(message string) {
	if len(c.services) == 0 {
		return
	}

	for i, err := range c.router.Send(message, nil) {
		if err != nil {
			c.logger.Error(fmt.Sprintf("notifying with %s: %s", c.services[i], err))
		}
	}
}

// withDefaultTitle returns the address with its title parameter set
// to title, unless the address already has a title parameter.
func withDefaultTitle(address *url.URL, title string) string {
	values := address.Query()
	if values.Has("title") {
		return address.String()
	}

	values.Set("title", title)
	withTitle := *address
	withTitle.RawQuery = values.Encode()
	return withTitle.String()
}

// Package app contains the controller driving lookups, the
// display and the map.
package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/qdm12/ip-tracker/internal/display"
	"github.com/qdm12/ip-tracker/internal/maps"
	"github.com/qdm12/ip-tracker/internal/resolution"
)

const ipDetectionErrorMessage = "Unable to detect your IP address"

type Controller struct {
	settings Settings
	resolver Resolver
	detector IPDetector
	display  Display
	mapView  Map
	notifier Notifier
	logger   Logger

	afterFunc func(d time.Duration, f func())

	mutex           sync.Mutex
	state           State
	errorGeneration uint64
}

func New(settings Settings, resolver Resolver, detector IPDetector,
	display Display, mapView Map, notifier Notifier, logger Logger) *Controller {
	return &Controller{
		settings: settings,
		resolver: resolver,
		detector: detector,
		display:  display,
		mapView:  mapView,
		notifier: notifier,
		logger:   logger,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// State returns a snapshot of the controller state.
func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

// Startup initializes the map, detects the own IP address and
// shows the location of the own IP address.
func (c *Controller) Startup(ctx context.Context) {
	c.placeMarker(c.settings.DefaultCenter)

	c.startLoading()
	defer c.stopLoading()

	ip, err := c.detector.IP(ctx)
	if err != nil {
		c.logger.Error("detecting own IP address: " + err.Error())
		c.showError(ipDetectionErrorMessage)
		return
	}

	c.mutex.Lock()
	c.state.DetectedIP = ip
	c.mutex.Unlock()
	c.logger.Info("detected own IP address " + ip.String())

	query := ""
	if c.settings.UseDetectedIP && ip.Is4() {
		query = ip.String()
	}
	c.apply(c.resolver.Resolve(ctx, query))
}

// Search shows the location of the query given, which can be
// an IPv4 address, a domain name or empty for the own IP address.
func (c *Controller) Search(ctx context.Context, query string) {
	c.startLoading()
	defer c.stopLoading()

	c.apply(c.resolver.Resolve(ctx, strings.TrimSpace(query)))
}

func (c *Controller) apply(result resolution.Result) {
	c.mutex.Lock()
	c.state.Record = result.Record
	c.state.Source = result.Source
	c.mutex.Unlock()

	c.display.Update(display.NewPanel(result.Record))
	c.placeMarker(maps.MarkerFor(result.Record))
}

func (c *Controller) placeMarker(position maps.Position) {
	c.mapView.ReplaceMarker(position, maps.MarkerIcon())
	c.mapView.SetView(position, c.settings.Zoom)
}

func (c *Controller) startLoading() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state.InFlight++
	c.display.SetLoading(true)
}

func (c *Controller) stopLoading() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.state.InFlight--
	if c.state.InFlight == 0 {
		c.display.SetLoading(false)
	}
}

// showError shows the error message and hides it after the
// error duration, unless a newer error was shown in the meantime.
func (c *Controller) showError(message string) {
	c.mutex.Lock()
	c.errorGeneration++
	generation := c.errorGeneration
	c.state.ErrorMessage = message
	c.display.ShowError(message)
	c.mutex.Unlock()

	c.notifier.Notify(message)

	c.afterFunc(c.settings.ErrorDuration, func() {
		c.mutex.Lock()
		defer c.mutex.Unlock()
		if generation != c.errorGeneration {
			return
		}
		c.state.ErrorMessage = ""
		c.display.HideError()
	})
}

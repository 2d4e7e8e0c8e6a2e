package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type UI struct {
	Colors        *bool
	FadeDelay     time.Duration
	ErrorDuration time.Duration
	ResizeDelay   time.Duration
	Zoom          int
	Latitude      *float64
	Longitude     *float64
}

func (u *UI) setDefaults() {
	u.Colors = gosettings.DefaultPointer(u.Colors, true)
	const defaultFadeDelay = 150 * time.Millisecond
	u.FadeDelay = gosettings.DefaultComparable(u.FadeDelay, defaultFadeDelay)
	const defaultErrorDuration = 4 * time.Second
	u.ErrorDuration = gosettings.DefaultComparable(u.ErrorDuration, defaultErrorDuration)
	const defaultResizeDelay = 100 * time.Millisecond
	u.ResizeDelay = gosettings.DefaultComparable(u.ResizeDelay, defaultResizeDelay)
	const defaultZoom = 13
	u.Zoom = gosettings.DefaultComparable(u.Zoom, defaultZoom)
	// New York City
	u.Latitude = gosettings.DefaultPointer(u.Latitude, 40.7128)
	u.Longitude = gosettings.DefaultPointer(u.Longitude, -74.006)
}

var (
	ErrZoomOutOfRange      = errors.New("map zoom is out of range")
	ErrLatitudeOutOfRange  = errors.New("latitude is out of range")
	ErrLongitudeOutOfRange = errors.New("longitude is out of range")
)

func (u UI) Validate() (err error) {
	const minZoom, maxZoom = 0, 19
	if u.Zoom < minZoom || u.Zoom > maxZoom {
		return fmt.Errorf("%w: %d must be between %d and %d",
			ErrZoomOutOfRange, u.Zoom, minZoom, maxZoom)
	}

	const maxLatitude, maxLongitude = 90, 180
	if *u.Latitude < -maxLatitude || *u.Latitude > maxLatitude {
		return fmt.Errorf("%w: %g", ErrLatitudeOutOfRange, *u.Latitude)
	}
	if *u.Longitude < -maxLongitude || *u.Longitude > maxLongitude {
		return fmt.Errorf("%w: %g", ErrLongitudeOutOfRange, *u.Longitude)
	}

	return nil
}

func (u UI) toLinesNode() *gotree.Node {
	node := gotree.New("User interface")
	node.Appendf("Colors: %s", gosettings.BoolToYesNo(u.Colors))
	node.Appendf("Fade delay: %s", u.FadeDelay)
	node.Appendf("Error duration: %s", u.ErrorDuration)
	node.Appendf("Resize delay: %s", u.ResizeDelay)
	mapNode := node.Appendf("Map")
	mapNode.Appendf("Zoom: %d", u.Zoom)
	mapNode.Appendf("Default center: %g,%g", *u.Latitude, *u.Longitude)
	return node
}

func (u *UI) read(r *reader.Reader) (err error) {
	u.Colors, err = r.BoolPtr("UI_COLORS")
	if err != nil {
		return err
	}

	u.FadeDelay, err = r.Duration("UI_FADE_DELAY")
	if err != nil {
		return err
	}

	u.ErrorDuration, err = r.Duration("UI_ERROR_DURATION")
	if err != nil {
		return err
	}

	u.ResizeDelay, err = r.Duration("UI_RESIZE_DELAY")
	if err != nil {
		return err
	}

	u.Zoom, err = r.Int("MAP_ZOOM")
	if err != nil {
		return err
	}

	u.Latitude, err = r.Float64Ptr("MAP_DEFAULT_LATITUDE")
	if err != nil {
		return err
	}

	u.Longitude, err = r.Float64Ptr("MAP_DEFAULT_LONGITUDE")
	return err
}

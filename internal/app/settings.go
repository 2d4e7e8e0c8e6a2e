package app

import (
	"time"

	"github.com/qdm12/ip-tracker/internal/maps"
)

type Settings struct {
	DefaultCenter maps.Position
	Zoom          int
	ErrorDuration time.Duration
	// UseDetectedIP makes the startup lookup use the detected IPv4
	// address instead of letting the geolocation service find it.
	UseDetectedIP bool
}

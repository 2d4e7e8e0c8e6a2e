package app

import (
	"net/netip"

	"github.com/qdm12/ip-tracker/internal/models"
	"github.com/qdm12/ip-tracker/internal/resolution"
)

type Status uint8

const (
	Idle Status = iota
	Loading
	ErrorShown
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case ErrorShown:
		return "error-shown"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller state.
type State struct {
	// InFlight is the number of lookups in progress.
	InFlight     int
	ErrorMessage string
	// DetectedIP is the own IP address detected at startup,
	// and is invalid if detection failed or did not run yet.
	DetectedIP netip.Addr
	Record     models.LocationRecord
	Source     resolution.Source
}

// Status returns the status for the state, where a shown error
// takes precedence over loading.
func (s State) Status() Status {
	switch {
	case s.ErrorMessage != "":
		return ErrorShown
	case s.InFlight > 0:
		return Loading
	default:
		return Idle
	}
}

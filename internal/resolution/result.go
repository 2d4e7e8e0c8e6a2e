package resolution

import "github.com/qdm12/ip-tracker/internal/models"

type Source uint8

const (
	// Live means the record comes from the geolocation service.
	Live Source = iota
	// Fallback means the record comes from the fallback table
	// or the default profile.
	Fallback
)

func (s Source) String() string {
	switch s {
	case Live:
		return "live"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the outcome of a resolution. Record is always
// displayable, and Reason is set only if Source is Fallback.
type Result struct {
	Record models.LocationRecord
	Source Source
	Reason error
}

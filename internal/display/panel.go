// Package display renders lookup results, the loading indicator and
// error banners to a terminal.
package display

import "github.com/qdm12/ip-tracker/internal/models"

// Panel contains the four values shown to the user.
type Panel struct {
	IP       string
	Location string
	Timezone string
	ISP      string
}

// NewPanel returns the panel values for the record given.
func NewPanel(record models.LocationRecord) Panel {
	return Panel{
		IP:       record.IP,
		Location: record.City + ", " + record.Region + " " + record.PostalCode,
		Timezone: record.Timezone,
		ISP:      record.ISP,
	}
}

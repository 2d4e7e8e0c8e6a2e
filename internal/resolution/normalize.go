package resolution

import (
	"fmt"

	"github.com/qdm12/ip-tracker/internal/models"
	"github.com/qdm12/ip-tracker/pkg/geolocation"
)

const (
	unknown    = "Unknown"
	unknownISP = "Unknown ISP"
)

// Normalize converts a geolocation payload to a location record,
// using default values for absent or empty fields.
func Normalize(payload geolocation.Payload) (record models.LocationRecord) {
	return models.LocationRecord{
		IP:         firstNonEmpty(payload.IP, unknown),
		Country:    firstNonEmpty(payload.Country.Name, unknown),
		Region:     firstNonEmpty(payload.State.Name, payload.Region.Name, unknown),
		City:       firstNonEmpty(payload.City.Name, unknown),
		Lat:        payload.Location.Latitude,
		Lng:        payload.Location.Longitude,
		PostalCode: payload.Postcode,
		Timezone:   FormatTimezone(int(payload.Timezone.OffsetSTD)),
		ISP:        firstNonEmpty(payload.ISP, payload.Organization, unknownISP),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// FormatTimezone formats an offset to UTC in seconds as UTC±HH:MM.
func FormatTimezone(offsetSeconds int) string {
	sign := '+'
	if offsetSeconds < 0 {
		sign = '-'
		offsetSeconds = -offsetSeconds
	}
	const secondsPerHour, secondsPerMinute = 3600, 60
	hours := offsetSeconds / secondsPerHour
	minutes := (offsetSeconds % secondsPerHour) / secondsPerMinute
	return fmt.Sprintf("UTC%c%02d:%02d", sign, hours, minutes)
}

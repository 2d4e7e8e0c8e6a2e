package display

import (
	"testing"

	"github.com/qdm12/ip-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_NewPanel(t *testing.T) {
	t.Parallel()

	record := models.LocationRecord{
		IP:         "8.8.8.8",
		Country:    "US",
		Region:     "California",
		City:       "Mountain View",
		Lat:        37.4056,
		Lng:        -122.0775,
		PostalCode: "94043",
		Timezone:   "UTC-08:00",
		ISP:        "Google LLC",
	}

	panel := NewPanel(record)

	expected := Panel{
		IP:       "8.8.8.8",
		Location: "Mountain View, California 94043",
		Timezone: "UTC-08:00",
		ISP:      "Google LLC",
	}
	assert.Equal(t, expected, panel)
}

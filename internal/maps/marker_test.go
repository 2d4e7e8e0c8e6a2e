package maps

import (
	"testing"

	"github.com/qdm12/ip-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_MarkerFor(t *testing.T) {
	t.Parallel()

	record := models.LocationRecord{Lat: 40.6782, Lng: -73.9442}

	position := MarkerFor(record)

	assert.Equal(t, Position{Lat: 40.6782, Lng: -73.9442}, position)
}

func Test_MarkerIcon(t *testing.T) {
	t.Parallel()

	icon := MarkerIcon()

	expected := Icon{
		ClassName:   "custom-marker",
		Size:        Point{X: 46, Y: 56},
		Anchor:      Point{X: 23, Y: 56},
		PopupAnchor: Point{X: 0, Y: -56},
	}
	assert.Equal(t, expected, icon)
}

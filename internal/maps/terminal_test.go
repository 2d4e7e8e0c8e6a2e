package maps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(string) {}

func Test_Terminal(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	terminal := NewTerminal(buffer, noopLogger{})

	_, ok := terminal.Marker()
	assert.False(t, ok)

	newYork := Position{Lat: 40.7128, Lng: -74.006}
	terminal.ReplaceMarker(newYork, MarkerIcon())
	terminal.SetView(newYork, 13)

	assert.Equal(t, "MAP https://www.openstreetmap.org/?mlat=40.7128&mlon=-74.006#map=13/40.7128/-74.006\n",
		buffer.String())

	brooklyn := Position{Lat: 40.6782, Lng: -73.9442}
	terminal.ReplaceMarker(brooklyn, MarkerIcon())

	marker, ok := terminal.Marker()
	assert.True(t, ok)
	assert.Equal(t, Marker{Position: brooklyn, Icon: MarkerIcon()}, marker)

	center, zoom := terminal.View()
	assert.Equal(t, newYork, center)
	assert.Equal(t, 13, zoom)

	buffer.Reset()
	terminal.InvalidateSize()
	assert.Equal(t, "MAP https://www.openstreetmap.org/?mlat=40.6782&mlon=-73.9442#map=13/40.7128/-74.006\n",
		buffer.String())
}

func Test_OpenStreetMapURL(t *testing.T) {
	t.Parallel()

	url := OpenStreetMapURL(Position{Lat: 1.5, Lng: -2}, 3, Marker{}, false)

	assert.Equal(t, "https://www.openstreetmap.org/#map=3/1.5/-2", url)
}

package maps

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

type Logger interface {
	Debug(s string)
}

// Terminal is a map showing its view as an OpenStreetMap link.
type Terminal struct {
	writer io.Writer
	logger Logger

	mutex     sync.Mutex
	center    Position
	zoom      int
	marker    Marker
	hasMarker bool
}

func NewTerminal(writer io.Writer, logger Logger) *Terminal {
	return &Terminal{
		writer: writer,
		logger: logger,
	}
}

// SetView centers the map on the position given at the zoom level given.
func (t *Terminal) SetView(center Position, zoom int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.center = center
	t.zoom = zoom
	t.render()
}

// ReplaceMarker removes the current marker if any, and
// places a new marker at the position given.
func (t *Terminal) ReplaceMarker(position Position, icon Icon) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.hasMarker {
		t.logger.Debug("removing marker at " + t.marker.Position.String())
	}
	t.marker = Marker{Position: position, Icon: icon}
	t.hasMarker = true
}

// InvalidateSize re-renders the map, for example after
// the terminal got resized.
func (t *Terminal) InvalidateSize() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.logger.Debug("map size invalidated")
	t.render()
}

func (t *Terminal) View() (center Position, zoom int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.center, t.zoom
}

func (t *Terminal) Marker() (marker Marker, ok bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.marker, t.hasMarker
}

func (t *Terminal) render() {
	_, _ = fmt.Fprintln(t.writer, "MAP", OpenStreetMapURL(t.center, t.zoom, t.marker, t.hasMarker))
}

func (p Position) String() string {
	return formatCoordinate(p.Lat) + "," + formatCoordinate(p.Lng)
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// OpenStreetMapURL returns a link to the OpenStreetMap website
// centered on the center given, with a marker if hasMarker is true.
func OpenStreetMapURL(center Position, zoom int, marker Marker, hasMarker bool) string {
	url := "https://www.openstreetmap.org/"
	if hasMarker {
		url += "?mlat=" + formatCoordinate(marker.Position.Lat) +
			"&mlon=" + formatCoordinate(marker.Position.Lng)
	}
	return url + "#map=" + strconv.Itoa(zoom) + "/" +
		formatCoordinate(center.Lat) + "/" + formatCoordinate(center.Lng)
}

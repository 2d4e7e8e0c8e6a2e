// Package maps keeps the state of the map view and its marker,
// and renders it as an OpenStreetMap link.
package maps

import "github.com/qdm12/ip-tracker/internal/models"

type Position struct {
	Lat float64
	Lng float64
}

type Point struct {
	X int
	Y int
}

// Icon is the marker icon geometry, in pixels.
type Icon struct {
	ClassName   string
	Size        Point
	Anchor      Point
	PopupAnchor Point
}

// MarkerIcon returns the location pin icon, anchored at its bottom center.
func MarkerIcon() Icon {
	return Icon{
		ClassName:   "custom-marker",
		Size:        Point{X: 46, Y: 56},
		Anchor:      Point{X: 23, Y: 56},
		PopupAnchor: Point{X: 0, Y: -56},
	}
}

func MarkerFor(record models.LocationRecord) Position {
	return Position{
		Lat: record.Lat,
		Lng: record.Lng,
	}
}

type Marker struct {
	Position Position
	Icon     Icon
}

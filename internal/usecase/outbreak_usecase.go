package usecase

import (
	"context"

	"agrodoctor/internal/domain/entity"
)

// OutbreakMarker is one hotspot projected onto the character map grid.
type OutbreakMarker struct {
	Hotspot entity.Hotspot

	// Col/Row are grid coordinates inside the map viewport.
	Col int
	Row int

	// DistanceKm is the great-circle distance from the device position,
	// or negative when no position is known.
	DistanceKm float64
}

// OutbreakMap is the render model for the outbreak screen: hotspots
// projected into a fixed-size grid spanning their bounding box.
type OutbreakMap struct {
	Width   int
	Height  int
	Markers []OutbreakMarker

	// West/South/East/North are the geographic bounds of the viewport.
	West  float64
	South float64
	East  float64
	North float64
}

// OutbreakUsecase serves the outbreak map screen.
type OutbreakUsecase interface {
	// Hotspots lists the raw geo-tagged aggregates.
	Hotspots(ctx context.Context) ([]entity.Hotspot, error)

	// Map fetches the hotspots and projects them into a width×height grid.
	Map(ctx context.Context, width, height int) (*OutbreakMap, error)
}

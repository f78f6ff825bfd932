package impl

import (
	"context"
	"log/slog"

	"agrodoctor/internal/domain/entity"
	"agrodoctor/internal/domain/service"
	"agrodoctor/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// boundPadding widens degenerate viewports (a single hotspot, or all
// hotspots on one line) so markers never sit on a zero-size axis.
const boundPadding = 0.05

// outbreakService implements the OutbreakUsecase interface.
type outbreakService struct {
	backend service.Backend
	locator service.Locator
	logger  *slog.Logger
}

// NewOutbreakService is the constructor for outbreakService.
func NewOutbreakService(backend service.Backend, locator service.Locator, logger *slog.Logger) usecase.OutbreakUsecase {
	return &outbreakService{backend: backend, locator: locator, logger: logger}
}

func (srv *outbreakService) Hotspots(ctx context.Context) ([]entity.Hotspot, error) {
	return srv.backend.Hotspots(ctx)
}

// Map projects the hotspots into a width×height grid spanning their
// geographic bounding box. Row 0 is the northern edge, matching screen
// coordinates.
func (srv *outbreakService) Map(ctx context.Context, width, height int) (*usecase.OutbreakMap, error) {
	if width < 2 || height < 2 {
		return nil, errors.Errorf("map grid too small: %dx%d", width, height)
	}

	hotspots, err := srv.backend.Hotspots(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.OutbreakMap{Width: width, Height: height}
	if len(hotspots) == 0 {
		return result, nil
	}

	points := make(orb.MultiPoint, 0, len(hotspots))
	for _, h := range hotspots {
		points = append(points, h.Point())
	}

	bound := padBound(points.Bound())
	result.West, result.South = bound.Min[0], bound.Min[1]
	result.East, result.North = bound.Max[0], bound.Max[1]

	spanX := bound.Max[0] - bound.Min[0]
	spanY := bound.Max[1] - bound.Min[1]

	// Distances are measured from the device position when one is known.
	var observer *orb.Point
	if position, err := srv.locator.Current(ctx); err == nil && position != nil {
		observer = &orb.Point{position.Longitude, position.Latitude}
	}

	for _, h := range hotspots {
		point := h.Point()
		col := int((point[0] - bound.Min[0]) / spanX * float64(width-1))
		row := int((bound.Max[1] - point[1]) / spanY * float64(height-1))

		distanceKm := -1.0
		if observer != nil {
			distanceKm = geo.Distance(*observer, point) / 1000
		}

		result.Markers = append(result.Markers, usecase.OutbreakMarker{
			Hotspot:    h,
			Col:        col,
			Row:        row,
			DistanceKm: distanceKm,
		})
	}

	srv.logger.Debug("outbreak map built",
		slog.Int("hotspots", len(hotspots)),
		slog.Int("width", width),
		slog.Int("height", height))

	return result, nil
}

func padBound(bound orb.Bound) orb.Bound {
	if bound.Max[0]-bound.Min[0] < boundPadding {
		bound.Min[0] -= boundPadding
		bound.Max[0] += boundPadding
	}
	if bound.Max[1]-bound.Min[1] < boundPadding {
		bound.Min[1] -= boundPadding
		bound.Max[1] += boundPadding
	}

	return bound
}

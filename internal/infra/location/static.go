// Package location provides the device position used to geo-tag diagnoses.
// The terminal build has no GPS; the static locator serves configured
// coordinates and models the mobile permission flow through configuration.
package location

import (
	"context"

	"agrodoctor/config"
	domainerrors "agrodoctor/internal/domain/errors"
	"agrodoctor/internal/domain/service"
)

// StaticLocator returns the position configured in the location section.
type StaticLocator struct {
	cfg *config.LocationConfig
}

// New builds the locator from configuration.
func New(cfg *config.Config) service.Locator {
	return &StaticLocator{cfg: cfg.Location}
}

// Current returns the configured position. A missing or disabled location
// section is the permission-denied path; enabled but zeroed coordinates are
// the no-fix path. Both leave the diagnosis unsaved, never crash the app.
func (l *StaticLocator) Current(_ context.Context) (*service.Position, error) {
	if l.cfg == nil || !l.cfg.Enabled {
		return nil, domainerrors.ErrLocationPermission
	}

	if l.cfg.Latitude == 0 && l.cfg.Longitude == 0 {
		return nil, domainerrors.ErrLocationUnavailable
	}

	return &service.Position{
		Latitude:  l.cfg.Latitude,
		Longitude: l.cfg.Longitude,
	}, nil
}

package service

import "context"

// Position is a device location fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Locator acquires the device position used to geo-tag a diagnosis. It has
// its own permission-then-read failure path, independent of the HTTP client:
// implementations return errors.ErrLocationPermission when access is
// disabled.
type Locator interface {
	Current(ctx context.Context) (*Position, error)
}

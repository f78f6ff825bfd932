package entity

import "github.com/paulmach/orb"

// Hotspot is a geo-tagged aggregate of reported disease occurrences,
// produced server-side and rendered on the outbreak map.
type Hotspot struct {
	DiseaseName string  `json:"disease_name"`
	Severity    float64 `json:"severity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Point returns the hotspot position in lon/lat order as used by orb.
func (h Hotspot) Point() orb.Point {
	return orb.Point{h.Longitude, h.Latitude}
}

// Band returns the severity band the map colors this hotspot with.
func (h Hotspot) Band() SeverityBand {
	// The map marks anything above 50 as dangerous, matching the mobile app.
	if h.Severity > 50 {
		return SeverityHigh
	}

	return SeverityLow
}

package entity

import "time"

// SeverityBand groups a severity percentage into the ranges the product
// colors by: green below 30, orange below 60, red above.
type SeverityBand int

const (
	SeverityLow SeverityBand = iota
	SeverityMedium
	SeverityHigh
)

// BandOf classifies a severity percentage. Values outside [0,100] are not
// clamped; the backend owns the scale and the client only renders it.
func BandOf(severity float64) SeverityBand {
	switch {
	case severity < 30:
		return SeverityLow
	case severity < 60:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

func (b SeverityBand) String() string {
	switch b {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	default:
		return "high"
	}
}

// Analysis is the vision model's verdict for one submitted leaf image.
// Confidence arrives preformatted by the backend (e.g. "97.2%") and is
// displayed as-is.
type Analysis struct {
	DiseaseName string  `json:"disease_name"`
	Confidence  string  `json:"confidence"`
	Severity    float64 `json:"severity_percentage"`

	// ImageRef is the local path of the analyzed image, carried to the
	// result screen alongside the backend's verdict.
	ImageRef string `json:"-"`
}

// Diagnosis is one geo-tagged record in the user's history. Records are
// created once via the log endpoint and never mutated by the client.
type Diagnosis struct {
	ID          int64     `json:"id"`
	DiseaseName string    `json:"disease_name"`
	Severity    float64   `json:"severity"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Timestamp   time.Time `json:"timestamp"`
}

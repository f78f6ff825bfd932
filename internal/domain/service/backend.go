// Package service declares the domain-level contracts for external
// collaborators: the AgroDoctor backend and the device location source.
package service

import (
	"context"
	"io"

	"agrodoctor/internal/domain/entity"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DiagnosisInput is one geo-tagged record to append to the user's history.
type DiagnosisInput struct {
	DiseaseName string  `json:"disease_name"`
	Severity    float64 `json:"severity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// FeedbackInput is a free-text message tied to the sender's identity.
type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Backend is the full surface of the remote diagnosis service. Every method
// maps to exactly one HTTP call through the shared client; none of them
// retries. Methods requiring authentication rely on the transport attaching
// the stored bearer token.
type Backend interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, input *RegisterInput) error

	// Me fetches the current user's profile.
	Me(ctx context.Context) (*entity.UserProfile, error)

	// RequestPasswordReset asks for a one-time code bound to email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword finalizes the reset with the emailed code.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error

	// AnalyzePlant submits a leaf image and returns the model's verdict.
	AnalyzePlant(ctx context.Context, filename string, image io.Reader) (*entity.Analysis, error)

	// LogDiagnosis persists a diagnosis record with geolocation.
	LogDiagnosis(ctx context.Context, input *DiagnosisInput) error

	// History lists the current user's diagnosis records.
	History(ctx context.Context) ([]entity.Diagnosis, error)

	// CalculateImpact fetches the economic-loss estimate. Severity is passed
	// through exactly as received, including zero and out-of-range values.
	CalculateImpact(ctx context.Context, diseaseName string, severity float64) (*entity.ImpactReport, error)

	// Hotspots lists geo-tagged disease hotspots for the outbreak map.
	Hotspots(ctx context.Context) ([]entity.Hotspot, error)

	// SubmitFeedback sends free-text feedback.
	SubmitFeedback(ctx context.Context, input *FeedbackInput) error
}

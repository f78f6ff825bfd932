// Package repository declares the persistence contracts the usecases depend
// on. Concrete implementations live under internal/infra.
package repository

// CredentialStore persists the single session token between runs. At most
// one token is held at a time and its presence is the client's only local
// authorization signal.
type CredentialStore interface {
	// Save replaces the stored token.
	Save(token string) error

	// Load returns the stored token, or ok=false when none is held.
	Load() (token string, ok bool, err error)

	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}

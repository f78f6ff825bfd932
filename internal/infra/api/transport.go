package api

import (
	"net/http"

	"agrodoctor/internal/domain/repository"

	"github.com/google/uuid"
)

// bearerTransport is the pre-request hook of the shared client: it reads the
// credential store on every request and, when a token is held, attaches it
// as an Authorization bearer header. With no token the request goes out
// unauthenticated. It also tags each request with an X-Request-ID for log
// correlation.
type bearerTransport struct {
	creds repository.CredentialStore
	next  http.RoundTripper
}

func newBearerTransport(creds repository.CredentialStore, next http.RoundTripper) *bearerTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	return &bearerTransport{creds: creds, next: next}
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the original request.
	clone := req.Clone(req.Context())

	if token, ok, err := t.creds.Load(); err == nil && ok {
		clone.Header.Set("Authorization", "Bearer "+token)
	}
	clone.Header.Set("X-Request-ID", uuid.NewString())

	return t.next.RoundTrip(clone)
}

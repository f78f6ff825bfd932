package entity

// SessionState is the explicit authorization state of the client. The
// presence of a stored token is the sole signal; the client never inspects
// the token and holds no notion of expiry.
type SessionState int

const (
	// Unauthenticated means no token is held; only the auth screens are
	// reachable.
	Unauthenticated SessionState = iota

	// Authenticated means a token is held and attached to every request.
	// The token is trusted until the server rejects it.
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}

	return "unauthenticated"
}

// Package auth is the identity boundary. A Provider either talks to a real
// identity backend over REST or simulates success for demo installs; the rest
// of the program only sees User values and the sentinel errors in errors.go.
package auth

import "context"

// User is an authenticated identity. Only the fields the UI needs.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Provider performs email/password authentication.
type Provider interface {
	// Register creates a new account and returns the signed-in user.
	Register(ctx context.Context, email, password string) (User, error)

	// SignIn authenticates an existing account.
	SignIn(ctx context.Context, email, password string) (User, error)

	// Simulated reports whether this provider fabricates identities
	// instead of talking to a backend.
	Simulated() bool
}

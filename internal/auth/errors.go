package auth

import "errors"

// Sentinel errors for the authentication boundary. Callers branch on these to
// pick a user-facing message; the underlying transport error is logged, never
// surfaced.
var (
	// ErrNotConfigured means no identity backend credentials are present.
	// The caller should fall back to the simulated provider.
	ErrNotConfigured = errors.New("auth: identity backend not configured")

	// ErrInvalidCredentials covers wrong password, unknown user, and
	// malformed email on sign-in.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrEmailInUse means registration hit an existing account.
	ErrEmailInUse = errors.New("auth: email already registered")

	// ErrWeakPassword means the backend rejected the password strength.
	ErrWeakPassword = errors.New("auth: password too weak")

	// ErrCancelled means the user abandoned the sign-in flow.
	ErrCancelled = errors.New("auth: sign-in cancelled")

	// ErrBlocked means the environment prevented the sign-in flow from
	// starting at all.
	ErrBlocked = errors.New("auth: sign-in blocked by environment")

	// ErrUnauthorizedOrigin means the backend rejected this client host.
	ErrUnauthorizedOrigin = errors.New("auth: client origin not authorized")

	// ErrNetwork covers transport failures talking to the backend.
	ErrNetwork = errors.New("auth: network failure")
)

// Message maps an auth error to the string shown in the login view.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailInUse):
		return "An account with this email already exists. Try signing in."
	case errors.Is(err, ErrWeakPassword):
		return "Password should be at least 6 characters."
	case errors.Is(err, ErrCancelled):
		return "Sign-in was cancelled."
	case errors.Is(err, ErrBlocked):
		return "Sign-in could not start. Check your environment and retry."
	case errors.Is(err, ErrUnauthorizedOrigin):
		return "This host is not authorized for sign-in."
	case errors.Is(err, ErrNotConfigured):
		return "Authentication is not configured. Continuing in demo mode."
	default:
		return "Something went wrong. Please try again."
	}
}

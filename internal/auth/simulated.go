package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pricenexus/internal/logging"
)

// SimulatedProvider fabricates a successful sign-in after a short delay so
// installs without backend credentials can still walk the full flow. Nothing
// is stored.
type SimulatedProvider struct {
	delay time.Duration
}

// NewSimulatedProvider builds a demo provider. A zero delay resolves
// immediately, which is what tests want.
func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	return &SimulatedProvider{delay: delay}
}

// Simulated always reports true.
func (p *SimulatedProvider) Simulated() bool { return true }

// Register fabricates a new identity for any non-empty email.
func (p *SimulatedProvider) Register(ctx context.Context, email, password string) (User, error) {
	return p.resolve(ctx, email)
}

// SignIn fabricates an identity for any non-empty email.
func (p *SimulatedProvider) SignIn(ctx context.Context, email, password string) (User, error) {
	return p.resolve(ctx, email)
}

func (p *SimulatedProvider) resolve(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrInvalidCredentials
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return User{}, ErrCancelled
		}
	}
	user := User{
		UID:         fmt.Sprintf("demo-%s", uuid.NewString()),
		Email:       email,
		DisplayName: displayNameFromEmail(email),
	}
	logging.Auth("simulated sign-in for %s", email)
	return user, nil
}

// displayNameFromEmail turns "jane.doe@example.com" into "Jane Doe".
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	if len(parts) == 0 {
		return local
	}
	return strings.Join(parts, " ")
}

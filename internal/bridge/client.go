// Package bridge is the boundary to the hosted generative-AI service. It
// exposes product search, value analysis, chat, and image synthesis behind a
// narrow interface so the rest of the app can be tested with fakes and never
// touches SDK types directly.
package bridge

import (
	"context"
	"errors"

	"pricenexus/internal/catalog"
)

// Chat turn roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry in a chat transcript.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ErrNotConfigured is returned by constructors when no API key is available.
// Callers treat it as "run in demo mode", not as a failure.
var ErrNotConfigured = errors.New("bridge: API key not configured")

// Client is the AI bridge. Implementations must tolerate malformed model
// output: SearchProducts returns an empty slice (nil error) for unparseable
// responses and reserves errors for transport-level failures.
type Client interface {
	// SearchProducts asks the model for live product listings matching the
	// query, normalized into catalog products.
	SearchProducts(ctx context.Context, query string) ([]catalog.Product, error)

	// AnalyzeValue returns a short verdict on whether the product's offers
	// are a good deal.
	AnalyzeValue(ctx context.Context, product catalog.Product) (string, error)

	// Chat returns the assistant reply for a new message given prior turns.
	Chat(ctx context.Context, history []Turn, message string) (string, error)

	// GenerateImage returns a data URI for a synthesized product photo.
	GenerateImage(ctx context.Context, productName string) (string, error)
}

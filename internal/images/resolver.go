// Package images resolves product images that the search response did not
// provide: it asks the AI bridge to synthesize one per product, tracks
// in-flight generations so a product never has two outstanding requests, and
// falls back to a deterministic stock placeholder when generation is
// unavailable.
package images

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"pricenexus/internal/logging"
)

// Generator produces an image payload for a product name. Satisfied by
// bridge.Client.
type Generator interface {
	GenerateImage(ctx context.Context, productName string) (string, error)
}

// Resolver is the image generation registry. Entries are created lazily when
// a product's canonical image is missing or broken, and the whole registry is
// cleared at the start of each new search.
type Resolver struct {
	gen     Generator // nil when the bridge is not configured
	timeout time.Duration

	// group collapses duplicate generation calls per product id within one
	// registry generation; the key carries the generation so requests from
	// before a Clear never share a result with requests after it.
	group singleflight.Group

	mu       sync.Mutex
	resolved map[string]string
	pending  map[string]struct{}

	// generation is bumped by Clear so completions from a previous result
	// set are discarded instead of leaking into the new one.
	generation uint64
}

// NewResolver builds a resolver over an optional generator.
func NewResolver(gen Generator, timeout time.Duration) *Resolver {
	return &Resolver{
		gen:      gen,
		timeout:  timeout,
		resolved: make(map[string]string),
		pending:  make(map[string]struct{}),
	}
}

// Image returns the generated payload for a product id, if one has resolved.
func (r *Resolver) Image(productID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	uri, ok := r.resolved[productID]
	return uri, ok
}

// Pending reports whether a generation request is outstanding for the id.
func (r *Resolver) Pending(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[productID]
	return ok
}

// Resolve ensures at most one generation request per product id. It returns
// (payload, true) when an image is available — either already resolved or
// freshly generated — and ("", false) when generation is unavailable, has
// failed, or is already in flight from another caller. The call blocks for
// its own generation, so drive it from a goroutine (or a tea.Cmd).
func (r *Resolver) Resolve(ctx context.Context, productID, productName string) (string, bool) {
	if r.gen == nil {
		return "", false
	}

	r.mu.Lock()
	if uri, ok := r.resolved[productID]; ok {
		r.mu.Unlock()
		return uri, true
	}
	if _, ok := r.pending[productID]; ok {
		r.mu.Unlock()
		return "", false
	}
	r.pending[productID] = struct{}{}
	gen := r.generation
	r.mu.Unlock()

	v, err, _ := r.group.Do(fmt.Sprintf("%d/%s", gen, productID), func() (interface{}, error) {
		gctx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			gctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
		return r.gen.GenerateImage(gctx, productName)
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		// Clear ran while we were generating; this result belongs to the
		// previous result set.
		logging.Images("discarding stale generation for %s", productID)
		return "", false
	}
	delete(r.pending, productID)
	if err != nil {
		logging.Images("generation failed for %s: %v", productID, err)
		return "", false
	}
	uri, _ := v.(string)
	if uri == "" {
		return "", false
	}
	r.resolved[productID] = uri
	logging.Images("generated image for %s (%d bytes)", productID, len(uri))
	return uri, true
}

// Clear drops all resolved and pending entries. Called at the start of every
// new search so stale generations never leak into a new result set.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = make(map[string]string)
	r.pending = make(map[string]struct{})
	r.generation++
}

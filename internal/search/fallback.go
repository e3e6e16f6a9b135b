// Package search implements the result acquisition pipeline: the fallback
// controller that decides between AI-sourced and demo-catalog results, and
// the session state that the presentation layer renders.
package search

import (
	"context"
	"time"

	"pricenexus/internal/bridge"
	"pricenexus/internal/catalog"
	"pricenexus/internal/logging"
)

// Fallback strings shown when analysis cannot be produced. Failures never
// propagate past this package.
const (
	analysisUnavailable = "Analysis unavailable."
	analysisFailed      = "Could not analyze value at this moment."
)

// Result is one ranked answer from the controller. Simulated marks result
// sets served from the demo catalog rather than a live bridge call.
type Result struct {
	Products  []catalog.Product
	Simulated bool
}

// Controller runs the fallback chain for a search: AI bridge first, then the
// local demo catalog, then an empty result. The bridge client may be nil
// (credentials missing), in which case tier one is skipped entirely.
type Controller struct {
	client  bridge.Client
	local   []catalog.Product
	timeout time.Duration
}

// NewController builds a controller over an optional bridge client and a
// local catalog used as the second fallback tier.
func NewController(client bridge.Client, local []catalog.Product, timeout time.Duration) *Controller {
	return &Controller{client: client, local: local, timeout: timeout}
}

// Live reports whether a bridge client is wired in.
func (c *Controller) Live() bool { return c.client != nil }

// Search resolves a query through the fallback tiers. Bridge failures of any
// kind count as zero results and are never returned as errors; an empty
// Result (no products, not simulated) means "no results", not a failure.
func (c *Controller) Search(ctx context.Context, query string) Result {
	if c.client != nil {
		tctx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			tctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
		products, err := c.client.SearchProducts(tctx, query)
		if err != nil {
			logging.SearchWarn("bridge search failed, falling back: %v", err)
		}
		if len(products) > 0 {
			return Result{Products: products}
		}
	}

	if local := catalog.Search(c.local, query); len(local) > 0 {
		logging.Search("served %d demo-catalog results for %q", len(local), query)
		return Result{Products: local, Simulated: true}
	}

	return Result{}
}

// Analyze returns a short value verdict for a product, degrading to a static
// string when the bridge is missing or fails.
func (c *Controller) Analyze(ctx context.Context, product catalog.Product) string {
	if c.client == nil {
		return analysisUnavailable
	}
	tctx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	verdict, err := c.client.AnalyzeValue(tctx, product)
	if err != nil {
		logging.SearchWarn("value analysis failed: %v", err)
		return analysisFailed
	}
	return verdict
}

package search

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pricenexus/internal/catalog"
	"pricenexus/internal/logging"
)

// State is an immutable snapshot of the session for rendering.
type State struct {
	Query       string
	Results     []catalog.Product
	IsLoading   bool
	HasSearched bool
	Simulated   bool
}

// Session holds the state of one search session. Only one search may be in
// flight at a time; a submission while loading is ignored. A generation
// counter tags each submission so a response that arrives after Reset (or
// after a newer accepted submission) is discarded instead of overwriting
// fresher state.
type Session struct {
	mu          sync.Mutex
	ctrl        *Controller
	id          string
	query       string
	results     []catalog.Product
	isLoading   bool
	hasSearched bool
	simulated   bool
	generation  uint64
}

// NewSession creates an empty session over the given controller.
func NewSession(ctrl *Controller) *Session {
	return &Session{ctrl: ctrl, id: uuid.NewString()}
}

// ID returns the session identifier (used for log correlation).
func (s *Session) ID() string { return s.id }

// SubmitQuery runs a search and commits the outcome. It returns false
// without side effects when the trimmed query is empty or another search is
// already in flight. The call blocks until results are committed, so drive
// it from a goroutine (or a tea.Cmd) in interactive use.
func (s *Session) SubmitQuery(ctx context.Context, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	s.mu.Lock()
	if s.isLoading {
		s.mu.Unlock()
		return false
	}
	s.query = query
	s.isLoading = true
	s.hasSearched = true
	s.results = nil
	s.simulated = false
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	logging.Search("session %s: searching %q (gen %d)", s.id, query, gen)
	res := s.ctrl.Search(ctx, query)
	catalog.SortByBestPrice(res.Products)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A Reset happened while we were out; this response is stale.
		logging.Search("session %s: discarding stale results (gen %d != %d)", s.id, gen, s.generation)
		return false
	}
	s.results = res.Products
	s.simulated = res.Simulated
	s.isLoading = false
	return true
}

// Reset restores the session to its initial empty state. Calling it twice in
// a row is the same as calling it once.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.results = nil
	s.isLoading = false
	s.hasSearched = false
	s.simulated = false
	s.generation++
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]catalog.Product, len(s.results))
	copy(results, s.results)
	return State{
		Query:       s.query,
		Results:     results,
		IsLoading:   s.isLoading,
		HasSearched: s.hasSearched,
		Simulated:   s.simulated,
	}
}

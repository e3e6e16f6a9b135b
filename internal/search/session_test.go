package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricenexus/internal/catalog"
)

func newTestSession(products []catalog.Product) *Session {
	client := &fakeBridge{
		searchFn: func(ctx context.Context, query string) ([]catalog.Product, error) {
			return products, nil
		},
	}
	return NewSession(NewController(client, nil, time.Second))
}

func TestSubmitQueryEmptyIsNoOp(t *testing.T) {
	s := newTestSession(nil)

	assert.False(t, s.SubmitQuery(context.Background(), ""))
	assert.False(t, s.SubmitQuery(context.Background(), "   "))

	state := s.Snapshot()
	assert.False(t, state.HasSearched, "empty query must not flip hasSearched")
	assert.False(t, state.IsLoading)
}

func TestSubmitQueryCommitsSortedResults(t *testing.T) {
	products := []catalog.Product{
		{ID: "b", Name: "B", Offers: []catalog.Offer{{Price: 1000}}},
		{ID: "a", Name: "A", Offers: []catalog.Offer{{Price: 500}, {Price: 300}}},
		{ID: "u", Name: "U", Offers: []catalog.Offer{{Price: 0}}},
	}
	s := newTestSession(products)

	require.True(t, s.SubmitQuery(context.Background(), "things"))

	state := s.Snapshot()
	assert.True(t, state.HasSearched)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "things", state.Query)
	require.Len(t, state.Results, 3)
	assert.Equal(t, "a", state.Results[0].ID, "min price 300 sorts first")
	assert.Equal(t, "b", state.Results[1].ID)
	assert.Equal(t, "u", state.Results[2].ID, "unknown price sorts last")
}

func TestSubmitQueryGuardWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeBridge{
		searchFn: func(ctx context.Context, query string) ([]catalog.Product, error) {
			close(started)
			<-release
			return []catalog.Product{{ID: "slow", Name: query}}, nil
		},
	}
	s := NewSession(NewController(client, nil, 0))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.True(t, s.SubmitQuery(context.Background(), "first"))
	}()

	<-started
	assert.False(t, s.SubmitQuery(context.Background(), "second"),
		"a submission while loading must be ignored")
	close(release)
	wg.Wait()

	state := s.Snapshot()
	assert.Equal(t, "first", state.Query)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "first", state.Results[0].Name)
}

func TestResetIdempotent(t *testing.T) {
	s := newTestSession([]catalog.Product{{ID: "x", Name: "X"}})
	require.True(t, s.SubmitQuery(context.Background(), "x"))

	s.Reset()
	once := s.Snapshot()
	s.Reset()
	twice := s.Snapshot()

	assert.Equal(t, once, twice)
	assert.Empty(t, twice.Query)
	assert.Empty(t, twice.Results)
	assert.False(t, twice.IsLoading)
	assert.False(t, twice.HasSearched)
}

func TestResetDiscardsInFlightResults(t *testing.T) {
	release := make(chan struct{})
	client := &fakeBridge{
		searchFn: func(ctx context.Context, query string) ([]catalog.Product, error) {
			<-release
			return []catalog.Product{{ID: "stale", Name: "Stale"}}, nil
		},
	}
	s := NewSession(NewController(client, nil, 0))

	done := make(chan bool)
	go func() {
		done <- s.SubmitQuery(context.Background(), "old query")
	}()

	// Give the search a moment to take the loading guard, then reset.
	time.Sleep(10 * time.Millisecond)
	s.Reset()
	close(release)

	assert.False(t, <-done, "response arriving after reset must be discarded")
	state := s.Snapshot()
	assert.Empty(t, state.Results, "stale results must not leak into a reset session")
	assert.False(t, state.HasSearched)
}

func TestSimulatedFlagSurfaces(t *testing.T) {
	ctrl := NewController(nil, catalog.Demo(), time.Second)
	s := NewSession(ctrl)

	require.True(t, s.SubmitQuery(context.Background(), "headphones"))
	state := s.Snapshot()
	assert.True(t, state.Simulated)
	assert.NotEmpty(t, state.Results)
}

package images

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingGenerator counts calls and blocks until released when gate is set.
type countingGenerator struct {
	calls   atomic.Int64
	gate    chan struct{}
	payload string
	err     error
}

func (g *countingGenerator) GenerateImage(ctx context.Context, name string) (string, error) {
	g.calls.Add(1)
	if g.gate != nil {
		<-g.gate
	}
	return g.payload, g.err
}

func TestResolveGeneratesOnce(t *testing.T) {
	gen := &countingGenerator{payload: "data:image/png;base64,AAAA"}
	r := NewResolver(gen, time.Second)

	uri, ok := r.Resolve(context.Background(), "p1", "Widget")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", uri)

	// A second resolve serves from the registry.
	uri, ok = r.Resolve(context.Background(), "p1", "Widget")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", uri)
	assert.Equal(t, int64(1), gen.calls.Load())
}

func TestResolveNeverDuplicatesInFlight(t *testing.T) {
	gen := &countingGenerator{payload: "data:image/png;base64,BBBB", gate: make(chan struct{})}
	r := NewResolver(gen, time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		uri, ok := r.Resolve(context.Background(), "p1", "Widget")
		assert.True(t, ok)
		assert.NotEmpty(t, uri)
	}()

	// Wait until the first request is marked pending, then race a second one.
	require.Eventually(t, func() bool { return r.Pending("p1") },
		time.Second, time.Millisecond)

	uri, ok := r.Resolve(context.Background(), "p1", "Widget")
	assert.False(t, ok, "a render pass before resolution must not trigger a duplicate")
	assert.Empty(t, uri)

	close(gen.gate)
	wg.Wait()

	assert.Equal(t, int64(1), gen.calls.Load())
	assert.False(t, r.Pending("p1"))
}

func TestResolveFailureClearsPending(t *testing.T) {
	gen := &countingGenerator{err: errors.New("model unavailable")}
	r := NewResolver(gen, time.Second)

	uri, ok := r.Resolve(context.Background(), "p1", "Widget")
	assert.False(t, ok)
	assert.Empty(t, uri)
	assert.False(t, r.Pending("p1"), "failed generation must not leave a pending entry")

	_, ok = r.Image("p1")
	assert.False(t, ok, "failed generation must not store a payload")

	// The product can be retried after a failure.
	gen.err = nil
	gen.payload = "data:image/png;base64,CCCC"
	_, ok = r.Resolve(context.Background(), "p1", "Widget")
	assert.True(t, ok)
}

func TestResolveWithoutGenerator(t *testing.T) {
	r := NewResolver(nil, time.Second)
	uri, ok := r.Resolve(context.Background(), "p1", "Widget")
	assert.False(t, ok)
	assert.Empty(t, uri)
}

func TestClearDiscardsInFlightGeneration(t *testing.T) {
	gen := &countingGenerator{payload: "data:image/png;base64,EEEE", gate: make(chan struct{})}
	r := NewResolver(gen, time.Second)

	done := make(chan struct{})
	go func() {
		defer close(done)
		uri, ok := r.Resolve(context.Background(), "p1", "Widget")
		assert.False(t, ok, "a generation outlived by Clear must not report success")
		assert.Empty(t, uri)
	}()

	require.Eventually(t, func() bool { return r.Pending("p1") },
		time.Second, time.Millisecond)

	// A new search starts while the generation is still running.
	r.Clear()

	close(gen.gate)
	<-done

	_, ok := r.Image("p1")
	assert.False(t, ok, "a result from before Clear must not appear in the new registry")
	assert.False(t, r.Pending("p1"))

	// The product can be generated fresh in the new result set.
	gen.gate = nil
	uri, ok := r.Resolve(context.Background(), "p1", "Widget")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,EEEE", uri)
}

func TestClearDropsRegistry(t *testing.T) {
	gen := &countingGenerator{payload: "data:image/png;base64,DDDD"}
	r := NewResolver(gen, time.Second)

	_, ok := r.Resolve(context.Background(), "p1", "Widget")
	require.True(t, ok)

	r.Clear()
	_, ok = r.Image("p1")
	assert.False(t, ok, "clear must drop resolved payloads")
}

func TestPlaceholderDeterministic(t *testing.T) {
	first := Placeholder("Audio", "product-42")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Placeholder("Audio", "product-42"))
	}
}

func TestPlaceholderCategoryBuckets(t *testing.T) {
	tests := []struct {
		category string
		wantSet  string
	}{
		{"Audio", "Audio"},
		{"Wireless Headphones", "Audio"},
		{"Gaming Consoles", "Gaming"},
		{"Laptop Accessories", "Laptops"},
		{"Smartphones", "Smartphones"},
		{"Fashion", "Fashion"},
		{"Home & Kitchen", "Home"},
		{"Beauty", "Beauty"},
		{"", "Default"},
		{"Widgets", "Electronics"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Placeholder(tt.category, "id")
			assert.Contains(t, placeholderSets[tt.wantSet], got)
		})
	}
}

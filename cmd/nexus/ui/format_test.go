package ui

import (
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{499, "₹499"},
		{1299, "₹1,299"},
		{24999, "₹24,999"},
		{139900, "₹1,39,900"},
		{1234567, "₹12,34,567"},
		{123456789, "₹12,34,56,789"},
		{0, "Price unavailable"},
		{-5, "Price unavailable"},
		{math.Inf(1), "Price unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatINR(tt.amount))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hell…", truncate("hello!", 5))
	assert.Equal(t, "", truncate("hello", 0))
	// Multibyte runes are cut on rune boundaries.
	assert.Equal(t, "₹1,2…", truncate("₹1,234", 5))
}

func TestDebouncerCoalesces(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(20 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// No trailing extra call fires.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
}

func TestDebouncerFlush(t *testing.T) {
	var calls atomic.Int64
	d := NewDebouncer(time.Hour)

	d.Trigger(func() { calls.Add(100) })
	d.Flush(func() { calls.Add(1) })

	assert.Equal(t, int64(1), calls.Load())
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load(), "flushed debouncer must drop the pending call")
}

// Package chat keeps the session-local transcript for the assistant panel.
// The transcript is append-only for the lifetime of one panel session and is
// never persisted.
package chat

import (
	"context"
	"sync"
	"time"

	"pricenexus/internal/bridge"
	"pricenexus/internal/logging"
)

// fallbackReply is shown when the bridge cannot be reached. Chat failures
// never propagate past this package.
const fallbackReply = "I'm having trouble connecting to the server."

// unavailableReply is shown when no bridge client is configured at all.
const unavailableReply = "The shopping assistant is offline right now (demo mode)."

// defaultHistoryWindow caps how many prior turns are sent with each message.
const defaultHistoryWindow = 20

// Session is one chat panel session.
type Session struct {
	mu      sync.Mutex
	client  bridge.Client // nil in demo mode
	turns   []bridge.Turn
	window  int
	timeout time.Duration
}

// NewSession creates an empty transcript over an optional bridge client.
func NewSession(client bridge.Client, timeout time.Duration) *Session {
	return &Session{client: client, window: defaultHistoryWindow, timeout: timeout}
}

// Ask appends the user message, fetches the assistant reply, appends it, and
// returns it. On any failure the reply is a static apology string — the
// transcript still records both turns so the panel stays coherent.
func (s *Session) Ask(ctx context.Context, message string) string {
	s.mu.Lock()
	history := s.recentLocked()
	s.turns = append(s.turns, bridge.Turn{Role: bridge.RoleUser, Text: message})
	s.mu.Unlock()

	reply := unavailableReply
	if s.client != nil {
		tctx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			tctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		text, err := s.client.Chat(tctx, history, message)
		if err != nil {
			logging.Chat("assistant reply failed: %v", err)
			reply = fallbackReply
		} else {
			reply = text
		}
	}

	s.mu.Lock()
	s.turns = append(s.turns, bridge.Turn{Role: bridge.RoleModel, Text: reply})
	s.mu.Unlock()
	return reply
}

// History returns a copy of the full transcript in order.
func (s *Session) History() []bridge.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bridge.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// recentLocked returns the capped history window. Caller holds s.mu.
func (s *Session) recentLocked() []bridge.Turn {
	start := 0
	if len(s.turns) > s.window {
		start = len(s.turns) - s.window
	}
	out := make([]bridge.Turn, len(s.turns)-start)
	copy(out, s.turns[start:])
	return out
}

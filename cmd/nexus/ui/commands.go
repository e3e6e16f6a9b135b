package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pricenexus/internal/auth"
	"pricenexus/internal/catalog"
	"pricenexus/internal/search"
)

// Messages emitted by background commands.

type typingTickMsg struct{}

type statusTickMsg struct{}

type searchDoneMsg struct {
	state search.State
}

type analysisMsg struct {
	productID string
	verdict   string
}

type imageMsg struct {
	productID string
	resolved  bool
}

type chatReplyMsg struct {
	reply string
}

type hintMsg struct {
	query   string
	matches int
}

type authResultMsg struct {
	user auth.User
	err  error
}

// typingTick paces the landing-screen tagline reveal.
func typingTick() tea.Cmd {
	return tea.Tick(40*time.Millisecond, func(time.Time) tea.Msg {
		return typingTickMsg{}
	})
}

// statusTick rotates the loading status line while a search runs.
func statusTick() tea.Cmd {
	return tea.Tick(1200*time.Millisecond, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// submitSearch runs the blocking search pipeline off the UI goroutine and
// reports the committed snapshot.
func (m Model) submitSearch(query string) tea.Cmd {
	session := m.deps.Session
	resolver := m.deps.Resolver
	ctx := m.ctx
	return func() tea.Msg {
		if resolver != nil {
			resolver.Clear()
		}
		session.SubmitQuery(ctx, query)
		return searchDoneMsg{state: session.Snapshot()}
	}
}

// analyze fetches a value verdict for one product.
func (m Model) analyze(product catalog.Product) tea.Cmd {
	ctrl := m.deps.Controller
	ctx := m.ctx
	return func() tea.Msg {
		return analysisMsg{
			productID: product.ID,
			verdict:   ctrl.Analyze(ctx, product),
		}
	}
}

// resolveImage asks the bridge to generate a product image.
func (m Model) resolveImage(product catalog.Product) tea.Cmd {
	resolver := m.deps.Resolver
	ctx := m.ctx
	return func() tea.Msg {
		_, ok := resolver.Resolve(ctx, product.ID, product.Name)
		return imageMsg{productID: product.ID, resolved: ok}
	}
}

// askAssistant sends a chat message and reports the reply.
func (m Model) askAssistant(message string) tea.Cmd {
	session := m.deps.Chat
	ctx := m.ctx
	return func() tea.Msg {
		return chatReplyMsg{reply: session.Ask(ctx, message)}
	}
}

// signIn authenticates against the configured provider. register selects
// account creation instead of sign-in.
func (m Model) signIn(email, password string, register bool) tea.Cmd {
	provider := m.deps.Auth
	ctx := m.ctx
	return func() tea.Msg {
		var (
			user auth.User
			err  error
		)
		if register {
			user, err = provider.Register(ctx, email, password)
		} else {
			user, err = provider.SignIn(ctx, email, password)
		}
		return authResultMsg{user: user, err: err}
	}
}

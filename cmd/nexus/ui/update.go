package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pricenexus/internal/auth"
	"pricenexus/internal/catalog"
	"pricenexus/internal/logging"
)

// Update is the single message loop for all three screens.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case typingTickMsg:
		if m.view == viewLanding && m.typed < len([]rune(tagline)) {
			m.typed++
			return m, typingTick()
		}
		return m, nil

	case statusTickMsg:
		if m.snapshot.IsLoading {
			m.statusIdx = (m.statusIdx + 1) % len(loadingStatuses)
			return m, statusTick()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.IsLoading && !m.loginBusy && !m.chatBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.snapshot = msg.state
		m.cursor = 0
		m.analyses = make(map[string]string)
		m.imageNote = make(map[string]string)
		return m, nil

	case analysisMsg:
		m.analyses[msg.productID] = msg.verdict
		return m, nil

	case imageMsg:
		if msg.resolved {
			m.imageNote[msg.productID] = "AI image ready"
		} else if _, ok := m.deps.Resolver.Image(msg.productID); !ok {
			m.imageNote[msg.productID] = "stock photo"
		}
		return m, nil

	case chatReplyMsg:
		m.chatBusy = false
		return m, nil

	case hintMsg:
		// Drop hints for text the user has already typed past.
		if msg.query == m.searchInput.Value() {
			if msg.matches > 0 {
				m.hint = fmt.Sprintf("%d demo-catalog matches ready offline", msg.matches)
			} else {
				m.hint = ""
			}
		}
		return m, nil

	case authResultMsg:
		m.loginBusy = false
		if msg.err != nil {
			logging.UI("login failed: %v", msg.err)
			m.loginErr = auth.Message(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.loginErr = ""
		m.view = viewDashboard
		m.searchInput.Focus()
		return m, nil
	}

	switch m.view {
	case viewLanding:
		return m.updateLanding(msg)
	case viewLogin:
		return m.updateLogin(msg)
	default:
		return m.updateDashboard(msg)
	}
}

func (m Model) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter", " ":
		m.view = viewLogin
		m.emailInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key messages (cursor blinks) still drive the inputs.
		return m.updateLoginInput(msg)
	}
	if m.loginBusy {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.view = viewLanding
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == fieldEmail {
			m.loginFocus = fieldPassword
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.loginFocus = fieldEmail
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil

	case "enter", "ctrl+r":
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			m.loginErr = "Enter both email and password."
			return m, nil
		}
		m.loginBusy = true
		m.loginErr = ""
		register := key.String() == "ctrl+r"
		return m, tea.Batch(m.signIn(email, password, register), m.spin.Tick)
	}

	return m.updateLoginInput(msg)
}

func (m Model) updateLoginInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.loginFocus == fieldEmail {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.chatOpen {
			m.chatInput, cmd = m.chatInput.Update(msg)
		} else {
			m.searchInput, cmd = m.searchInput.Update(msg)
		}
		return m, cmd
	}

	// The chat panel grabs keys while open.
	if m.chatOpen {
		switch key.String() {
		case "esc":
			m.chatOpen = false
			m.chatInput.Blur()
			m.searchInput.Focus()
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.chatInput.Value())
			if text == "" || m.chatBusy {
				return m, nil
			}
			m.chatInput.SetValue("")
			m.chatBusy = true
			return m, tea.Batch(m.askAssistant(text), m.spin.Tick)
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		if m.snapshot.HasSearched {
			m.deps.Session.Reset()
			m.snapshot = m.deps.Session.Snapshot()
			m.searchInput.SetValue("")
			m.cursor = 0
			return m, nil
		}
		m.view = viewLanding
		return m, nil

	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" || m.snapshot.IsLoading {
			return m, nil
		}
		m.statusIdx = 0
		m.hint = ""
		if m.deps.Debounce != nil {
			m.deps.Debounce.Cancel()
		}
		cmd := m.submitSearch(query)
		// Mark loading immediately so the next View shows the spinner.
		m.snapshot.IsLoading = true
		m.snapshot.HasSearched = true
		m.snapshot.Query = query
		m.snapshot.Results = nil
		return m, tea.Batch(cmd, m.spin.Tick, statusTick())

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.snapshot.Results)-1 {
			m.cursor++
		}
		return m, nil

	case "ctrl+a":
		if idx, ok := m.selectedProduct(); ok {
			p := m.snapshot.Results[idx]
			if _, done := m.analyses[p.ID]; !done {
				m.analyses[p.ID] = "" // loading marker
				return m, m.analyze(p)
			}
		}
		return m, nil

	case "ctrl+g":
		if idx, ok := m.selectedProduct(); ok {
			p := m.snapshot.Results[idx]
			if !m.deps.Resolver.Pending(p.ID) {
				if _, done := m.deps.Resolver.Image(p.ID); !done {
					m.imageNote[p.ID] = "generating..."
					return m, m.resolveImage(p)
				}
			}
		}
		return m, nil

	case "ctrl+t":
		m.chatOpen = true
		m.searchInput.Blur()
		m.chatInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.scheduleHint()
	return m, cmd
}

// scheduleHint recomputes the offline match hint after typing pauses.
func (m *Model) scheduleHint() {
	if m.deps.Send == nil || m.deps.Debounce == nil {
		return
	}
	query := m.searchInput.Value()
	if strings.TrimSpace(query) == "" {
		m.hint = ""
		m.deps.Debounce.Cancel()
		return
	}
	demo := m.deps.Demo
	send := m.deps.Send
	m.deps.Debounce.Trigger(func() {
		send(hintMsg{query: query, matches: len(catalog.Search(demo, query))})
	})
}

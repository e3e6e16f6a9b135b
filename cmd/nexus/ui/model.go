// Package ui is the terminal front end: a landing screen, an email/password
// login, and the deal dashboard with live search, value analysis, generated
// product images, and the assistant chat panel.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pricenexus/internal/auth"
	"pricenexus/internal/catalog"
	"pricenexus/internal/chat"
	"pricenexus/internal/images"
	"pricenexus/internal/search"
)

// view is which screen the model is showing.
type view int

const (
	viewLanding view = iota
	viewLogin
	viewDashboard
)

// loginField is which input has focus on the login screen.
type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
)

// tagline is typed out character by character on the landing screen.
const tagline = "Scanning every store in India so you don't have to."

// loadingStatuses cycle under the spinner while a search is in flight.
var loadingStatuses = []string{
	"Handshaking with Amazon.in API...",
	"Scraping Flipkart listings...",
	"Negotiating with Croma servers...",
	"Comparing 1,400+ sellers...",
	"Crunching the best prices...",
}

// Deps is everything the UI needs, wired in main.
type Deps struct {
	Session    *search.Session
	Controller *search.Controller
	Resolver   *images.Resolver
	Chat       *chat.Session
	Auth       auth.Provider

	// Demo is the local catalog used for the typed-query match hint.
	Demo []catalog.Product

	// Send posts a message into the running program from outside the
	// update loop. Set by main once the program exists; nil disables the
	// features that need it (the debounced match hint).
	Send func(tea.Msg)

	// Debounce coalesces keystrokes before the match hint recomputes.
	Debounce *Debouncer
}

// Model is the root bubbletea model.
type Model struct {
	deps Deps
	ctx  context.Context

	view   view
	width  int
	height int

	// Landing
	typed int // runes of tagline revealed so far

	// Login
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    loginField
	loginBusy     bool
	loginErr      string
	user          auth.User

	// Dashboard
	searchInput textinput.Model
	hint        string
	spin        spinner.Model
	statusIdx   int
	snapshot    search.State
	cursor      int
	analyses    map[string]string // product id -> verdict, "" while loading
	imageNote   map[string]string // product id -> short image state label

	// Chat panel
	chatOpen  bool
	chatInput textinput.Model
	chatBusy  bool

	quitting bool
}

// New builds the root model.
func New(ctx context.Context, deps Deps) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	query := textinput.New()
	query.Placeholder = "Search for headphones, sneakers, phones..."
	query.CharLimit = 200

	chatIn := textinput.New()
	chatIn.Placeholder = "Ask the shopping assistant..."
	chatIn.CharLimit = 400

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	if deps.Debounce == nil {
		deps.Debounce = NewDebouncer(queryDebounceDelay)
	}

	return Model{
		deps:          deps,
		ctx:           ctx,
		view:          viewLanding,
		emailInput:    email,
		passwordInput: password,
		searchInput:   query,
		chatInput:     chatIn,
		spin:          sp,
		analyses:      make(map[string]string),
		imageNote:     make(map[string]string),
	}
}

// Init starts the landing typing effect.
func (m Model) Init() tea.Cmd {
	return typingTick()
}

// selectedProduct returns the product under the cursor, if any.
func (m Model) selectedProduct() (idx int, ok bool) {
	if len(m.snapshot.Results) == 0 {
		return 0, false
	}
	if m.cursor >= len(m.snapshot.Results) {
		return len(m.snapshot.Results) - 1, true
	}
	return m.cursor, true
}

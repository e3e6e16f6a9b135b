package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pricenexus/internal/bridge"
	"pricenexus/internal/catalog"
	"pricenexus/internal/images"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewLanding:
		return m.viewLanding()
	case viewLogin:
		return m.viewLogin()
	default:
		return m.viewDashboard()
	}
}

func (m Model) viewLanding() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString("  " + titleStyle.Render("PriceNexus"))
	b.WriteString("\n\n")

	runes := []rune(tagline)
	shown := string(runes[:m.typed])
	b.WriteString("  " + taglineStyle.Render(shown))
	if m.typed < len(runes) {
		b.WriteString(taglineStyle.Render("▌"))
	}
	b.WriteString("\n\n")
	b.WriteString("  " + helpStyle.Render("enter: get started · q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Sign in to PriceNexus"))
	if m.deps.Auth.Simulated() {
		b.WriteString("  " + badgeStyle.Render("DEMO MODE"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + promptStyle.Render("Email") + "\n")
	b.WriteString("  " + m.emailInput.View() + "\n\n")
	b.WriteString("  " + promptStyle.Render("Password") + "\n")
	b.WriteString("  " + m.passwordInput.View() + "\n\n")

	if m.loginBusy {
		b.WriteString("  " + m.spin.View() + statusStyle.Render(" Signing you in...") + "\n")
	}
	if m.loginErr != "" {
		b.WriteString("  " + errStyle.Render(m.loginErr) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + helpStyle.Render("enter: sign in · ctrl+r: create account · tab: switch field · esc: back"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	header := titleStyle.Render("PriceNexus")
	if m.user.Email != "" {
		header += helpStyle.Render("  ·  " + m.user.Email)
	}
	if m.snapshot.Simulated {
		header += "  " + badgeStyle.Render("DEMO RESULTS")
	}
	b.WriteString("\n  " + header + "\n\n")

	b.WriteString("  " + m.searchInput.View() + "\n")
	if m.hint != "" && !m.snapshot.IsLoading {
		b.WriteString("  " + helpStyle.Render(m.hint) + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.snapshot.IsLoading:
		b.WriteString("  " + m.spin.View() + statusStyle.Render(" "+loadingStatuses[m.statusIdx]) + "\n")

	case !m.snapshot.HasSearched:
		b.WriteString("  " + helpStyle.Render("Search for a product to compare prices across Indian stores.") + "\n")

	case len(m.snapshot.Results) == 0:
		b.WriteString("  " + errStyle.Render(fmt.Sprintf("No deals found for %q. Try a different search.", m.snapshot.Query)) + "\n")

	default:
		b.WriteString(m.viewResults())
	}

	if m.chatOpen {
		b.WriteString("\n" + m.viewChat())
	}

	b.WriteString("\n  " + helpStyle.Render(m.dashboardHelp()) + "\n")
	return b.String()
}

func (m Model) dashboardHelp() string {
	if m.chatOpen {
		return "enter: send · esc: close chat"
	}
	return "enter: search · ↑/↓: select · ctrl+a: analyze · ctrl+g: generate image · ctrl+t: chat · esc: clear"
}

// maxVisibleResults keeps the list inside a typical terminal height.
const maxVisibleResults = 6

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString("  " + storeStyle.Render(fmt.Sprintf("%d results for %q, cheapest first", len(m.snapshot.Results), m.snapshot.Query)) + "\n\n")

	start := 0
	if m.cursor >= maxVisibleResults {
		start = m.cursor - maxVisibleResults + 1
	}
	end := start + maxVisibleResults
	if end > len(m.snapshot.Results) {
		end = len(m.snapshot.Results)
	}

	for i := start; i < end; i++ {
		p := m.snapshot.Results[i]
		card := m.renderCard(p, i == m.cursor)
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(card) + "\n")
	}
	return b.String()
}

func (m Model) renderCard(p catalog.Product, selected bool) string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}

	var lines []string
	name := truncate(p.Name, width-4)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(name))

	price := priceStyle.Render(formatINR(p.BestPrice()))
	rating := ratingStyle.Render(fmt.Sprintf("★ %.1f", p.Rating))
	lines = append(lines, price+"  "+rating+"  "+storeStyle.Render(p.Category))

	if best := bestOffer(p); best != nil {
		lines = append(lines, storeStyle.Render(truncate("at "+best.Store, width-4)))
	}
	if len(p.Features) > 0 {
		lines = append(lines, storeStyle.Render(truncate(strings.Join(p.Features, " · "), width-4)))
	}

	if selected {
		image := p.Image
		if uri, ok := m.deps.Resolver.Image(p.ID); ok {
			image = uri
		} else if image == "" {
			image = images.Placeholder(p.Category, p.ID)
		}
		lines = append(lines, helpStyle.Render(truncate("img: "+image, width-4)))
		if verdict, ok := m.analyses[p.ID]; ok {
			if verdict == "" {
				lines = append(lines, statusStyle.Render("Analyzing value..."))
			} else {
				lines = append(lines, statusStyle.Render(truncate(verdict, width-4)))
			}
		}
		if note, ok := m.imageNote[p.ID]; ok {
			lines = append(lines, helpStyle.Render("image: "+note))
		}
		return selectedCardStyle.Width(width).Render(strings.Join(lines, "\n"))
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// bestOffer returns the in-budget offer backing BestPrice, if any.
func bestOffer(p catalog.Product) *catalog.Offer {
	var best *catalog.Offer
	for i := range p.Offers {
		o := &p.Offers[i]
		if o.Price <= 0 {
			continue
		}
		if best == nil || o.Price < best.Price {
			best = o
		}
	}
	return best
}

// chatWindow limits how many transcript turns are rendered.
const chatWindow = 8

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString("  " + promptStyle.Render("Shopping Assistant") + "\n")

	history := m.deps.Chat.History()
	if len(history) > chatWindow {
		history = history[len(history)-chatWindow:]
	}
	for _, turn := range history {
		prefix := chatBotStyle.Render("nexus ")
		style := chatBotStyle
		if turn.Role == bridge.RoleUser {
			prefix = chatUserStyle.Render("you   ")
			style = chatUserStyle
		}
		b.WriteString("  " + prefix + style.Render(truncate(turn.Text, m.chatWidth())) + "\n")
	}
	if m.chatBusy {
		b.WriteString("  " + m.spin.View() + statusStyle.Render(" thinking...") + "\n")
	}
	b.WriteString("  " + m.chatInput.View() + "\n")
	return b.String()
}

func (m Model) chatWidth() int {
	if m.width > 20 {
		return m.width - 12
	}
	return 60
}

package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------

// Theme bundles the style set the renderers pull from.
type Theme struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	DotSymbol string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects the active theme. "mono" drops color for terminals (or
// users) that want none.
func SetTheme(name string) {
	switch name {
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title:     plain.Bold(true),
			Success:   plain,
			Pending:   plain,
			Accent:    plain,
			Muted:     plain,
			Error:     plain.Bold(true),
			Selected:  plain.Reverse(true),
			Help:      plain,
			DotSymbol: "*",
		}
	default: // classic
		current = Theme{
			Title:     lipgloss.NewStyle().Bold(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:      lipgloss.NewStyle().Faint(true),
			DotSymbol: "●",
		}
	}
}

// Current returns the active theme.
func Current() Theme { return current }

// Dot renders a category marker in the category's color token.
func Dot(color string) string {
	if current.DotSymbol == "*" {
		return "*"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(current.DotSymbol)
}

// Panel draws a framed box around content.
func Panel(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

func Ok(msg string) {
	fmt.Println(current.Success.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}

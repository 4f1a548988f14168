package menu

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#6AAA64")
	colorYellow = lipgloss.Color("#C9B458")
	colorBlack  = lipgloss.Color("#787C7E")
	colorError  = lipgloss.Color("#E74C3C")
	colorBorder = lipgloss.Color("#3A3A3C")
)

type styles struct {
	Title  lipgloss.Style
	Key    lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Black  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Box    lipgloss.Style
}

// newStyles binds the menu styles to r so color support follows the
// destination writer rather than stdout.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:  r.NewStyle().Bold(true),
		Key:    r.NewStyle().Bold(true),
		Green:  r.NewStyle().Foreground(colorGreen).Bold(true),
		Yellow: r.NewStyle().Foreground(colorYellow).Bold(true),
		Black:  r.NewStyle().Foreground(colorBlack),
		Muted:  r.NewStyle().Foreground(colorBlack),
		Error:  r.NewStyle().Foreground(colorError).Bold(true),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2),
	}
}

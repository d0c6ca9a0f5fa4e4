package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI.
type Theme struct {
	// Text
	TextPrimary lipgloss.Color
	TextDim     lipgloss.Color

	// Borders
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	// Semantic colors
	Accent  lipgloss.Color // primary accent (blue)
	Success lipgloss.Color // confirmations
	Warning lipgloss.Color // pending state
	Error   lipgloss.Color // overdue banner
	Running lipgloss.Color // active countdown
}

// DefaultTheme is a dark palette in the Tokyo Night family.
var DefaultTheme = Theme{
	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),

	Border:        lipgloss.Color("#414868"),
	BorderFocused: lipgloss.Color("#7aa2f7"),

	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Running: lipgloss.Color("#e0af68"),
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Base    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Running lipgloss.Style

	Selected   lipgloss.Style
	KeyBinding lipgloss.Style
	KeyHint    lipgloss.Style

	Panel      lipgloss.Style
	Box        lipgloss.Style
	BoxFocused lipgloss.Style

	Countdown lipgloss.Style
	Overdue   lipgloss.Style

	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Base:    lipgloss.NewStyle().Foreground(t.TextPrimary),
		Dim:     lipgloss.NewStyle().Foreground(t.TextDim),
		Title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1),
		Header:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),

		Selected:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		KeyBinding: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		KeyHint:    lipgloss.NewStyle().Foreground(t.TextDim),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		BoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused).
			Padding(0, 1),

		Countdown: lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		Overdue:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),

		Footer: lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// DefaultStyles are the styles built from the default theme.
var DefaultStyles = NewStyles(DefaultTheme)

// RadioIcon returns a styled radio button.
func RadioIcon(selected bool, s Styles) string {
	if selected {
		return s.Selected.Render("●")
	}
	return s.Dim.Render("○")
}

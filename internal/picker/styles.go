package picker

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the picker.
type Styles struct {
	Header   lipgloss.Style
	Count    lipgloss.Style
	Status   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
	Preview  lipgloss.Style
	Empty    lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(subtle),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		Selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Marker: lipgloss.NewStyle().
			Foreground(accent),

		Preview: lipgloss.NewStyle().
			Foreground(primary),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),
	}
}

// Package layout holds the picker's pure layout math and text clipping.
package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Picker PickerConfig
	Text   TextConfig
}

// PickerConfig holds picker dimension configuration.
type PickerConfig struct {
	// HeightPercent is the share of the terminal height the picker occupies.
	HeightPercent int

	// MinHeight is the smallest picker height in lines.
	MinHeight int

	// HeaderLines are taken by the hint line, the prompt and the blank line below it.
	HeaderLines int

	// ListWidthPercent: percentage of width for the candidate list.
	ListWidthPercent int

	// PreviewGap separates the list from the preview pane.
	PreviewGap int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Picker: PickerConfig{
			HeightPercent:    50,
			MinHeight:        8,
			HeaderLines:      3, // hints (1) + prompt (1) + blank (1)
			ListWidthPercent: 40,
			PreviewGap:       2,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}

package layout

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCalculatePickerLayout(t *testing.T) {
	cfg := DefaultConfig().Picker

	tests := []struct {
		name          string
		width, height int
		want          PickerLayout
	}{
		{"standard terminal", 80, 40, PickerLayout{Height: 20, ListWidth: 32, PreviewWidth: 46, BodyHeight: 17}},
		{"short terminal uses min height", 80, 10, PickerLayout{Height: 8, ListWidth: 32, PreviewWidth: 46, BodyHeight: 5}},
		{"tiny terminal caps at terminal height", 10, 4, PickerLayout{Height: 4, ListWidth: 4, PreviewWidth: 4, BodyHeight: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePickerLayout(tt.width, tt.height, cfg)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestCalculatePickerLayout_FullHeight(t *testing.T) {
	cfg := DefaultConfig().Picker
	cfg.HeightPercent = 100

	got := CalculatePickerLayout(100, 30, cfg)
	assert.Equal(t, got.Height, 30)
	assert.Equal(t, got.BodyHeight, 27)
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name                    string
		maxVisible, selected, n int
		wantStart, wantEnd      int
	}{
		{"fits", 10, 3, 5, 0, 5},
		{"selection on first page", 3, 1, 10, 0, 3},
		{"selection scrolled", 3, 5, 10, 3, 6},
		{"last item", 3, 9, 10, 7, 10},
		{"no room", 0, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selected, tt.n)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleListItems(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selected, tt.n, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		width     int
		want      string
		truncated bool
	}{
		{"fits", "hello", 10, "hello", false},
		{"exact", "hello", 5, "hello", false},
		{"cut", "hello world", 8, "hello...", true},
		{"narrower than ellipsis", "hello", 2, "..", true},
		{"zero width", "hello", 0, "", true},
		{"multibyte", "📁 projects", 5, "📁 ...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.width, cfg)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, truncated, tt.truncated)
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, StripANSI("\x1b[1;4mab\x1b[0mc"), "abc")
	assert.Equal(t, VisibleLength("\x1b[1;4mab\x1b[0mc"), 3)
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := DefaultConfig().Text

	t.Run("short text untouched", func(t *testing.T) {
		in := "\x1b[1mab\x1b[0m"
		assert.Equal(t, TruncateANSIAware(in, 5, cfg), in)
	})

	t.Run("keeps codes and resets", func(t *testing.T) {
		in := "\x1b[1mabcdef\x1b[0mghij"
		got := TruncateANSIAware(in, 6, cfg)
		assert.Equal(t, got, "\x1b[1mabc...\x1b[0m")
		assert.Equal(t, VisibleLength(got), 6)
	})
}

func TestClipLines(t *testing.T) {
	cfg := DefaultConfig().Text
	text := "one\ntwo\nthree\nfour\nfive"

	tests := []struct {
		name                  string
		width, height, offset int
		want                  []string
	}{
		{"head", 10, 2, 0, []string{"one", "two"}},
		{"offset", 10, 2, 2, []string{"three", "four"}},
		{"offset clamps to end", 10, 2, 99, []string{"four", "five"}},
		{"negative offset", 10, 1, -3, []string{"one"}},
		{"width cuts", 4, 3, 2, []string{"t...", "four", "five"}},
		{"zero height", 10, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, ClipLines(text, tt.width, tt.height, tt.offset, cfg), tt.want)
		})
	}
}

func TestClipLines_ExpandsTabs(t *testing.T) {
	got := ClipLines("\tx", 10, 1, 0, DefaultConfig().Text)
	assert.DeepEqual(t, got, []string{"    x"})
}

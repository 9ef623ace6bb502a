package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText cuts text to maxWidth runes, ending in the ellipsis when
// something was dropped. Returns the text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}

	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text, false
	}

	ellipsis := []rune(cfg.Ellipsis)
	if maxWidth <= len(ellipsis) {
		return string(ellipsis[:maxWidth]), true
	}

	return string(runes[:maxWidth-len(ellipsis)]) + cfg.Ellipsis, true
}

// TruncateANSIAware truncates styled text, keeping escape codes intact and
// appending a reset so highlighting never bleeds past the cut.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleLength(styledText) <= maxWidth {
		return styledText
	}

	target := max(maxWidth-utf8.RuneCountInString(cfg.Ellipsis), 0)

	var out strings.Builder
	visible := 0
	for i := 0; i < len(styledText) && visible < target; {
		if loc := ansiRegex.FindStringIndex(styledText[i:]); loc != nil && loc[0] == 0 {
			out.WriteString(styledText[i : i+loc[1]])
			i += loc[1]
			continue
		}
		r, size := utf8.DecodeRuneInString(styledText[i:])
		out.WriteRune(r)
		visible++
		i += size
	}

	out.WriteString(cfg.Ellipsis)
	out.WriteString("\x1b[0m")
	return out.String()
}

// ClipLines returns at most height lines of text starting at line offset,
// each truncated to width. Tabs are expanded to four spaces first.
func ClipLines(text string, width, height, offset int, cfg TextConfig) []string {
	if height <= 0 {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\t", "    "), "\n")
	offset = ClampOffset(offset, len(lines), height)

	end := min(offset+height, len(lines))
	out := make([]string, 0, end-offset)
	for _, line := range lines[offset:end] {
		clipped, _ := TruncateText(line, width, cfg)
		out = append(out, clipped)
	}
	return out
}

// ClampOffset keeps a scroll offset inside [0, total-height].
func ClampOffset(offset, total, height int) int {
	maxOffset := max(total-height, 0)
	return min(max(offset, 0), maxOffset)
}

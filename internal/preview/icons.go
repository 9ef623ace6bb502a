package preview

import "github.com/nikbrunner/pathmarks/internal/pathutil"

// IconSet maps filesystem kinds to the glyphs shown in labels and previews.
type IconSet struct {
	File    string
	Dir     string
	Unknown string
}

// EmojiIcons work in any UTF-8 terminal.
var EmojiIcons = IconSet{
	File:    "📄",
	Dir:     "📁",
	Unknown: "❔",
}

// NerdIcons require a patched Nerd Font.
var NerdIcons = IconSet{
	File:    "\uf15b",
	Dir:     "\uf07b",
	Unknown: "\uf128",
}

// Icons returns the icon set selected by the nerd fonts setting.
func Icons(nerdFonts bool) IconSet {
	if nerdFonts {
		return NerdIcons
	}
	return EmojiIcons
}

// For returns the icon for kind.
func (s IconSet) For(kind pathutil.Kind) string {
	switch kind {
	case pathutil.KindFile:
		return s.File
	case pathutil.KindDir:
		return s.Dir
	default:
		return s.Unknown
	}
}

// ForPath classifies path and returns its icon.
func (s IconSet) ForPath(path string) string {
	return s.For(pathutil.Classify(path))
}

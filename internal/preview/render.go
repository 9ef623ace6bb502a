// Package preview renders bookmarks as text: the picker preview block, the
// picker label and the single-line form used by list.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nikbrunner/pathmarks/internal/model"
	"github.com/nikbrunner/pathmarks/internal/pathutil"
)

// Separator divides the preview header from its body.
var Separator = strings.Repeat("-", 41)

const (
	branchMiddle = "├─"
	branchLast   = "└─"
	none         = "None"
)

// Render builds the preview block for b: header, separator, then file
// contents, a directory listing or a could-not-preview notice. The body is
// empty when b has no path.
func Render(b model.Bookmark, icons IconSet) string {
	path := b.PathOr("")
	kind := pathutil.Classify(path)

	var sb strings.Builder

	sb.WriteString(icons.For(kind))
	if b.Name != nil {
		sb.WriteString(" " + *b.Name)
	}
	sb.WriteString("\n")
	if b.Description != nil {
		sb.WriteString(*b.Description + "\n")
	}
	sb.WriteString(path + "\n")
	sb.WriteString(Separator)

	switch kind {
	case pathutil.KindFile:
		if content := fileContent(path); content != "" {
			sb.WriteString("\n" + content)
		}
	case pathutil.KindDir:
		if tree := dirTree(path, icons); tree != "" {
			sb.WriteString("\n" + tree)
		}
	default:
		// a bookmark without a path has nothing to point at
		if path != "" {
			sb.WriteString("\n" + fmt.Sprintf("Could not preview: %s", path))
		}
	}

	return sb.String()
}

// Short renders b on one line with every field spelled out; absent fields
// are shown as None.
func Short(b model.Bookmark) string {
	id := none
	if b.Persisted() {
		id = fmt.Sprintf("%d", b.ID)
	}
	return fmt.Sprintf("id: %s, name: %s, path: %s, description: %s",
		id, b.NameOr(none), b.PathOr(none), b.DescriptionOr(none))
}

// Pretty renders the picker label: icon followed by the name, or by the
// path when the bookmark has no name.
func Pretty(b model.Bookmark, icons IconSet) string {
	path := b.PathOr("")
	icon := icons.ForPath(path)
	if b.Name != nil && *b.Name != "" {
		return icon + " " + *b.Name
	}
	return icon + " " + path
}

// fileContent returns the whole file as text, or "" if it cannot be read or
// is not valid UTF-8.
func fileContent(path string) string {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return ""
	}
	return string(data)
}

// dirTree renders the directory name followed by one branch line per child.
func dirTree(path string, icons IconSet) string {
	entries, err := pathutil.List(path)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(icons.Dir + " " + filepath.Base(path))

	for i, e := range entries {
		branch := branchMiddle
		if i == len(entries)-1 {
			branch = branchLast
		}
		kind := pathutil.KindFile
		if !e.IsFile {
			kind = pathutil.KindDir
		}
		sb.WriteString("\n" + branch + icons.For(kind) + " " + e.Name)
	}

	return sb.String()
}

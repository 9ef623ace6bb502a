// Package pathutil holds the filesystem helpers bookmarks rely on:
// canonicalization, kind classification and ignore-aware directory listing.
package pathutil

import "os"

// Kind classifies what a path points at.
type Kind int

const (
	KindUnknown Kind = iota // missing, unreadable or neither file nor directory
	KindFile                // regular file
	KindDir                 // directory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Classify stats path (following symlinks) and reports its kind.
// An empty path is KindUnknown.
func Classify(path string) Kind {
	if path == "" {
		return KindUnknown
	}
	info, err := os.Stat(path)
	if err != nil {
		return KindUnknown
	}
	switch {
	case info.Mode().IsRegular():
		return KindFile
	case info.IsDir():
		return KindDir
	default:
		return KindUnknown
	}
}

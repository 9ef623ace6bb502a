package pathutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/pathmarks/internal/model"
)

// Canonicalize resolves path to its absolute, symlink-free form.
// It fails with model.ErrInvalidPath if the path does not exist.
func Canonicalize(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", model.ErrInvalidPath)
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidPath, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidPath, err)
	}
	return resolved, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && path[1] == filepath.Separator
}

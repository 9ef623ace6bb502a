package pathutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name   string
	Path   string
	IsFile bool
}

// List returns the immediate children of dir: directories first, then
// everything else, each group sorted case-insensitively by name. Dotfiles and
// entries matched by a .gitignore (in dir or any ancestor up to the repository
// root) are left out.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	rules := loadIgnoreRules(dir)

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		isFile := Classify(path) != KindDir
		if rules.ignored(path, !isFile) {
			continue
		}
		entries = append(entries, Entry{Name: name, Path: path, IsFile: isFile})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsFile != entries[j].IsFile {
			return !entries[i].IsFile
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}

// ignoreFile is a compiled .gitignore together with the directory it lives in.
type ignoreFile struct {
	base    string
	matcher *ignore.GitIgnore
}

type ignoreRules []ignoreFile

// loadIgnoreRules collects .gitignore files from dir upwards, stopping at the
// first directory that contains a .git entry.
func loadIgnoreRules(dir string) ignoreRules {
	var rules ignoreRules
	current := dir
	for {
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(current, ".gitignore")); err == nil {
			rules = append(rules, ignoreFile{base: current, matcher: gi})
		}
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return rules
		}
		parent := filepath.Dir(current)
		if parent == current {
			return rules
		}
		current = parent
	}
}

func (r ignoreRules) ignored(path string, isDir bool) bool {
	for _, f := range r {
		rel, err := filepath.Rel(f.base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)
		if f.matcher.MatchesPath(rel) {
			return true
		}
		if isDir && f.matcher.MatchesPath(rel+"/") {
			return true
		}
	}
	return false
}

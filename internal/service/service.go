// Package service implements the bookmark operations behind each CLI command.
package service

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nikbrunner/pathmarks/internal/config"
	"github.com/nikbrunner/pathmarks/internal/model"
	"github.com/nikbrunner/pathmarks/internal/pathutil"
	"github.com/nikbrunner/pathmarks/internal/picker"
	"github.com/nikbrunner/pathmarks/internal/preview"
)

// Store is the persistence the service needs.
type Store interface {
	Add(b model.Bookmark) error
	List() ([]model.Bookmark, error)
	Get(id int64) (model.Bookmark, error)
	GetByPath(path string) (model.Bookmark, error)
	Remove(id int64) error
	Update(id int64, b model.Bookmark) (model.Bookmark, error)
}

// Picker lets the user choose among candidates.
type Picker interface {
	Pick(items []preview.Candidate) (picker.Result[preview.Candidate], error)
}

// Options configure a Service. Zero values fall back to sensible defaults.
type Options struct {
	Editor string // used when $EDITOR is unset
	Icons  preview.IconSet
	Out    io.Writer // command output, default stdout
	ErrOut io.Writer // notices that must not mix with command output, default stderr
	Logger *log.Logger
}

// Service orchestrates the store, renderer and picker.
type Service struct {
	store  Store
	picker Picker
	editor string
	icons  preview.IconSet
	out    io.Writer
	errOut io.Writer
	log    *log.Logger
}

// New creates a Service. The editor is resolved here, once: $EDITOR, then
// opts.Editor, then vi.
func New(store Store, p Picker, opts Options) *Service {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = opts.Editor
	}
	if editor == "" {
		editor = config.DefaultEditor
	}

	icons := opts.Icons
	if icons == (preview.IconSet{}) {
		icons = preview.EmojiIcons
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Service{
		store:  store,
		picker: p,
		editor: editor,
		icons:  icons,
		out:    out,
		errOut: errOut,
		log:    logger,
	}
}

// Editor returns the editor used by Command.
func (s *Service) Editor() string {
	return s.editor
}

// AddParams holds the inputs of Add.
type AddParams struct {
	Name        *string
	Path        string
	Description *string
}

// Add canonicalizes the path and stores a new bookmark.
func (s *Service) Add(p AddParams) error {
	path, err := pathutil.Canonicalize(p.Path)
	if err != nil {
		return err
	}

	b := model.NewBookmark(model.NewBookmarkParams{
		Name:        p.Name,
		Path:        path,
		Description: p.Description,
	})
	if err := s.store.Add(b); err != nil {
		return err
	}

	s.log.Debug("bookmark added", "path", path)
	fmt.Fprintln(s.out, "Bookmark added")
	return nil
}

// Remove deletes the bookmark with the given id.
func (s *Service) Remove(id int64) error {
	if err := s.remove(id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Bookmark removed")
	return nil
}

func (s *Service) remove(id int64) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	if err := s.store.Remove(id); err != nil {
		return err
	}
	s.log.Debug("bookmark removed", "id", id)
	return nil
}

// UpdateParams holds the inputs of Update. Nil fields keep their stored value.
type UpdateParams struct {
	ID          int64
	Name        *string
	Path        *string
	Description *string
}

// Update merges the supplied fields into the stored bookmark.
func (s *Service) Update(p UpdateParams) error {
	existing, err := s.store.Get(p.ID)
	if err != nil {
		return err
	}

	merged := existing.Clone()
	if p.Path != nil {
		path, err := pathutil.Canonicalize(*p.Path)
		if err != nil {
			return err
		}
		merged.Path = &path
	}
	if p.Name != nil {
		merged.Name = model.StringPtr(*p.Name)
	}
	if p.Description != nil {
		merged.Description = model.StringPtr(*p.Description)
	}

	if _, err := s.store.Update(p.ID, merged); err != nil {
		return err
	}

	s.log.Debug("bookmark updated", "id", p.ID)
	fmt.Fprintln(s.out, "Bookmark updated")
	return nil
}

// List prints one line per bookmark: the short rendering, or the bare path
// when pathsOnly is set.
func (s *Service) List(pathsOnly bool) error {
	bookmarks, err := s.store.List()
	if err != nil {
		return err
	}

	for _, b := range bookmarks {
		if pathsOnly {
			fmt.Fprintln(s.out, b.PathOr(""))
		} else {
			fmt.Fprintln(s.out, preview.Short(b))
		}
	}
	return nil
}

// Check reports whether path, or the working directory when path is empty,
// is bookmarked. A path that cannot be canonicalized is not bookmarked.
func (s *Service) Check(path string) (bool, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return false, fmt.Errorf("%w: %v", model.ErrInvalidPath, err)
		}
		path = wd
	}

	canonical, err := pathutil.Canonicalize(path)
	if err != nil {
		s.log.Debug("check: path does not resolve", "path", path, "err", err)
		return false, nil
	}

	_, err = s.store.GetByPath(canonical)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, model.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Select opens the picker and returns the chosen path, or "" when the user
// cancelled or deleted.
func (s *Service) Select() (string, error) {
	return s.pick()
}

// Command opens the picker and derives a shell command from the chosen
// path: the editor for files, cd for directories, "" otherwise.
func (s *Service) Command() (string, error) {
	path, err := s.pick()
	if err != nil || path == "" {
		return "", err
	}
	return s.commandFor(path), nil
}

func (s *Service) commandFor(path string) string {
	switch pathutil.Classify(path) {
	case pathutil.KindFile:
		return s.editor + " " + path
	case pathutil.KindDir:
		return "cd " + path
	default:
		return ""
	}
}

package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/nikbrunner/pathmarks/internal/culler"
	"github.com/nikbrunner/pathmarks/internal/exporter"
	"github.com/nikbrunner/pathmarks/internal/importer"
	"github.com/nikbrunner/pathmarks/internal/model"
	"github.com/nikbrunner/pathmarks/internal/pathutil"
)

// DefaultPruneWorkers is the culler concurrency used when none is given.
const DefaultPruneWorkers = 8

// Export writes all bookmarks to w as Netscape bookmark HTML.
func (s *Service) Export(w io.Writer) error {
	bookmarks, err := s.store.List()
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, exporter.ExportHTML(bookmarks)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	s.log.Debug("bookmarks exported", "count", len(bookmarks))
	return nil
}

// Import adds the file bookmarks found in a Netscape bookmark HTML document.
// Entries that are not local paths, no longer resolve, or are already
// bookmarked are skipped. Store failures abort the import.
func (s *Service) Import(r io.Reader) (added, skipped int, err error) {
	bookmarks, skipped, err := importer.ParseHTMLBookmarks(r)
	if err != nil {
		return 0, 0, fmt.Errorf("parse import: %w", err)
	}

	for _, b := range bookmarks {
		path, err := pathutil.Canonicalize(*b.Path)
		if err != nil {
			s.log.Debug("import: skipping unresolved path", "path", *b.Path, "err", err)
			skipped++
			continue
		}
		b.Path = &path

		if err := s.store.Add(b); err != nil {
			if errors.Is(err, model.ErrDuplicatePath) {
				s.log.Debug("import: skipping duplicate", "path", path)
				skipped++
				continue
			}
			return added, skipped, err
		}
		added++
	}

	fmt.Fprintf(s.out, "Imported %d bookmarks (%d skipped)\n", added, skipped)
	return added, skipped, nil
}

// PruneParams holds the inputs of Prune.
type PruneParams struct {
	DryRun  bool
	Workers int
}

// Prune removes bookmarks whose path no longer exists and returns them.
// With DryRun set nothing is removed. Unreadable paths are kept.
func (s *Service) Prune(p PruneParams) ([]model.Bookmark, error) {
	bookmarks, err := s.store.List()
	if err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers < 1 {
		workers = DefaultPruneWorkers
	}

	results := culler.CheckPaths(bookmarks, workers, nil)
	for _, r := range results {
		if r.Status == culler.Unreadable {
			s.log.Warn("prune: keeping unreadable path", "id", r.Bookmark.ID, "path", r.Bookmark.PathOr(""), "err", r.Error)
		}
	}

	stale := culler.Stale(results)
	for _, b := range stale {
		if p.DryRun {
			fmt.Fprintf(s.out, "Would remove %d: %s\n", b.ID, b.PathOr(""))
			continue
		}
		if err := s.remove(b.ID); err != nil {
			return nil, err
		}
		fmt.Fprintf(s.out, "Removed %d: %s\n", b.ID, b.PathOr(""))
	}

	if p.DryRun {
		fmt.Fprintf(s.out, "%d stale bookmarks\n", len(stale))
	} else {
		fmt.Fprintf(s.out, "Pruned %d bookmarks\n", len(stale))
	}
	return stale, nil
}

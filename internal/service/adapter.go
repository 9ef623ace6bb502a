package service

import (
	"errors"
	"fmt"

	"github.com/nikbrunner/pathmarks/internal/picker"
	"github.com/nikbrunner/pathmarks/internal/preview"
)

// pick feeds every bookmark with a path to the picker and acts on the
// result. Deletions happen before pick returns and yield "".
func (s *Service) pick() (string, error) {
	bookmarks, err := s.store.List()
	if err != nil {
		return "", err
	}

	candidates := preview.NewCandidates(bookmarks, s.icons)
	res, err := s.picker.Pick(candidates)
	if err != nil {
		return "", err
	}
	s.log.Debug("picker closed", "action", res.Action, "items", len(res.Items))

	switch res.Action {
	case picker.ActionAccept:
		if len(res.Items) == 0 {
			return "", nil
		}
		return res.Items[0].Value(), nil

	case picker.ActionDelete:
		var errs []error
		for _, c := range res.Items {
			if err := s.remove(c.Bookmark.ID); err != nil {
				errs = append(errs, err)
				continue
			}
			// stdout may be captured by a shell, so report on errOut
			fmt.Fprintln(s.errOut, "Bookmark removed")
		}
		if len(errs) > 0 {
			removed := len(res.Items) - len(errs)
			return "", fmt.Errorf("removed %d of %d bookmarks: %w", removed, len(res.Items), errors.Join(errs...))
		}
		return "", nil

	default:
		return "", nil
	}
}

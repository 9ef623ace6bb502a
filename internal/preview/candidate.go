package preview

import "github.com/nikbrunner/pathmarks/internal/model"

// Candidate is a bookmark offered to the picker. It carries the bookmark
// itself so the picker result can be acted on without lookups.
type Candidate struct {
	Bookmark model.Bookmark
	Icons    IconSet
}

// NewCandidates wraps every bookmark that has a path. Bookmarks without a
// path cannot be previewed or opened and are skipped.
func NewCandidates(bookmarks []model.Bookmark, icons IconSet) []Candidate {
	candidates := make([]Candidate, 0, len(bookmarks))
	for _, b := range bookmarks {
		if b.Path == nil {
			continue
		}
		candidates = append(candidates, Candidate{Bookmark: b, Icons: icons})
	}
	return candidates
}

// Label is the text the fuzzy matcher sees.
func (c Candidate) Label() string {
	return Pretty(c.Bookmark, c.Icons)
}

// Preview is the text shown beside the list.
func (c Candidate) Preview() string {
	return Render(c.Bookmark, c.Icons)
}

// Value is what accepting the candidate yields.
func (c Candidate) Value() string {
	return c.Bookmark.PathOr("")
}

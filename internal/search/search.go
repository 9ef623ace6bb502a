package search

import (
	"github.com/sahilm/fuzzy"
)

// Labeler is anything with a label to match against.
type Labeler interface {
	Label() string
}

// Match is one item accepted by the query.
type Match struct {
	Index          int   // position in the searched slice
	MatchedIndexes []int // byte offsets of matched characters in the label
	Score          int
}

// labelSource implements fuzzy.Source over a slice of labelers.
type labelSource[T Labeler] []T

func (ls labelSource[T]) String(i int) string {
	return ls[i].Label()
}

func (ls labelSource[T]) Len() int {
	return len(ls)
}

// Filter matches query against the labels of items.
// An empty query matches everything in the original order; otherwise results
// are sorted by match score (best first).
func Filter[T Labeler](query string, items []T) []Match {
	if query == "" {
		all := make([]Match, len(items))
		for i := range items {
			all[i] = Match{Index: i}
		}
		return all
	}

	matches := fuzzy.FindFrom(query, labelSource[T](items))

	results := make([]Match, len(matches))
	for i, m := range matches {
		results[i] = Match{
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

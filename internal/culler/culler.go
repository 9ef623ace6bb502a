// Package culler finds bookmarks whose paths no longer exist.
package culler

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/nikbrunner/pathmarks/internal/model"
)

// Status represents the health of a bookmarked path.
type Status int

const (
	Healthy    Status = iota // path exists
	Missing                  // path does not exist, or the bookmark has none
	Unreadable               // stat failed for another reason (permissions, I/O)
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Missing:
		return "missing"
	default:
		return "unreadable"
	}
}

// Result holds the check result for a single bookmark.
type Result struct {
	Bookmark model.Bookmark
	Status   Status
	Error    string // reason for Missing or Unreadable
}

// ProgressFunc is called after each path is checked.
// completed is the number of paths checked so far, total is the total count.
type ProgressFunc func(completed, total int)

// statPath is swapped in tests.
var statPath = os.Stat

// CheckPaths stats all bookmark paths concurrently and returns results in
// the order of bookmarks.
func CheckPaths(bookmarks []model.Bookmark, concurrency int, onProgress ProgressFunc) []Result {
	if len(bookmarks) == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(bookmarks))
	jobs := make(chan int, len(bookmarks))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkPath(bookmarks[idx])

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(bookmarks))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range bookmarks {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func checkPath(b model.Bookmark) Result {
	result := Result{Bookmark: b.Clone()}

	if b.Path == nil || *b.Path == "" {
		result.Status = Missing
		result.Error = "No path"
		return result
	}

	_, err := statPath(*b.Path)
	switch {
	case err == nil:
		result.Status = Healthy
	case errors.Is(err, fs.ErrNotExist):
		result.Status = Missing
		result.Error = "Not found"
	default:
		result.Status = Unreadable
		result.Error = normalizeError(err)
	}
	return result
}

// Stale returns the bookmarks whose paths are Missing.
func Stale(results []Result) []model.Bookmark {
	var stale []model.Bookmark
	for _, r := range results {
		if r.Status == Missing {
			stale = append(stale, r.Bookmark)
		}
	}
	return stale
}

// normalizeError simplifies verbose stat errors into readable categories.
func normalizeError(err error) string {
	if errors.Is(err, fs.ErrPermission) {
		return "Permission denied"
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not a directory"):
		return "Not a directory"
	case strings.Contains(lower, "too many levels of symbolic links"):
		return "Symlink loop"
	case strings.Contains(lower, "input/output error"):
		return "I/O error"
	default:
		return msg
	}
}

package storage

import "github.com/nikbrunner/pathmarks/internal/model"

// Storage defines the interface for persisting bookmarks.
type Storage interface {
	Add(b model.Bookmark) error
	List() ([]model.Bookmark, error)
	Get(id int64) (model.Bookmark, error)
	GetByPath(path string) (model.Bookmark, error)
	Remove(id int64) error
	Update(id int64, b model.Bookmark) (model.Bookmark, error)
	Close() error
}

var _ Storage = (*SQLiteStorage)(nil)

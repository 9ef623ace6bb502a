package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/pathmarks/internal/model"
)

const schema = `
	CREATE TABLE IF NOT EXISTS bookmarks (
		id INTEGER PRIMARY KEY,
		name TEXT,
		path TEXT,
		description TEXT
	)
`

const selectColumns = "SELECT id, name, path, description FROM bookmarks"

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage opens (creating if needed) the database at path and makes
// sure the bookmarks table exists.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreIO, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreIO, err)
	}

	// One invocation, one writer. Keep a single connection so pragmas stick.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", model.ErrStoreIO, err)
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.ensureTable(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) ensureTable() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: create table: %v", model.ErrStoreIO, err)
	}
	return nil
}

// Add inserts b. It fails with model.ErrDuplicatePath if another bookmark
// already has the same path.
func (s *SQLiteStorage) Add(b model.Bookmark) error {
	if b.Path != nil {
		existing, err := s.GetByPath(*b.Path)
		switch {
		case err == nil:
			return fmt.Errorf("bookmark with path %s (id %d): %w", *b.Path, existing.ID, model.ErrDuplicatePath)
		case !errors.Is(err, model.ErrNotFound):
			return err
		}
	}

	_, err := s.db.Exec(
		"INSERT INTO bookmarks (name, path, description) VALUES (?, ?, ?)",
		b.Name, b.Path, b.Description,
	)
	if err != nil {
		return fmt.Errorf("%w: insert: %v", model.ErrStoreIO, err)
	}
	return nil
}

// List returns every bookmark in insertion order.
func (s *SQLiteStorage) List() ([]model.Bookmark, error) {
	rows, err := s.db.Query(selectColumns + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", model.ErrStoreIO, err)
	}
	defer rows.Close()

	bookmarks := []model.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list: %v", model.ErrStoreIO, err)
	}

	return bookmarks, nil
}

// Get returns the bookmark with the given id.
func (s *SQLiteStorage) Get(id int64) (model.Bookmark, error) {
	b, err := s.queryOne(selectColumns+" WHERE id = ?", id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Bookmark{}, fmt.Errorf("bookmark with id %d: %w", id, model.ErrNotFound)
	}
	return b, err
}

// GetByPath returns the bookmark whose path equals path exactly.
func (s *SQLiteStorage) GetByPath(path string) (model.Bookmark, error) {
	b, err := s.queryOne(selectColumns+" WHERE path = ? ORDER BY id LIMIT 1", path)
	if errors.Is(err, model.ErrNotFound) {
		return model.Bookmark{}, fmt.Errorf("bookmark with path %s: %w", path, model.ErrNotFound)
	}
	return b, err
}

// Remove deletes the bookmark with the given id. A DELETE of a missing row
// is silent in SQLite, so existence is checked first.
func (s *SQLiteStorage) Remove(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM bookmarks WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: delete: %v", model.ErrStoreIO, err)
	}
	return nil
}

// Update overwrites name, path and description of bookmark id with the values
// in b. A path already held by a different bookmark is rejected; keeping the
// bookmark's own path is not a collision.
func (s *SQLiteStorage) Update(id int64, b model.Bookmark) (model.Bookmark, error) {
	if _, err := s.Get(id); err != nil {
		return model.Bookmark{}, err
	}

	if b.Path != nil {
		var other int64
		err := s.db.QueryRow(
			"SELECT id FROM bookmarks WHERE path = ? AND id != ? LIMIT 1", *b.Path, id,
		).Scan(&other)
		switch {
		case err == nil:
			return model.Bookmark{}, fmt.Errorf("bookmark with path %s (id %d): %w", *b.Path, other, model.ErrDuplicatePath)
		case !errors.Is(err, sql.ErrNoRows):
			return model.Bookmark{}, fmt.Errorf("%w: update: %v", model.ErrStoreIO, err)
		}
	}

	_, err := s.db.Exec(
		"UPDATE bookmarks SET name = ?, path = ?, description = ? WHERE id = ?",
		b.Name, b.Path, b.Description, id,
	)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("%w: update: %v", model.ErrStoreIO, err)
	}

	updated := b.Clone()
	updated.ID = id
	return updated, nil
}

func (s *SQLiteStorage) queryOne(query string, args ...any) (model.Bookmark, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("%w: %v", model.ErrStoreIO, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Bookmark{}, fmt.Errorf("%w: %v", model.ErrStoreIO, err)
		}
		return model.Bookmark{}, model.ErrNotFound
	}
	return scanBookmark(rows)
}

package storage

import (
	"database/sql"
	"errors"

	"github.com/nikbrunner/pathmarks/internal/model"
)

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBookmark decodes one row of (id, name, path, description).
// NULL text columns become nil pointers.
func scanBookmark(row rowScanner) (model.Bookmark, error) {
	var (
		id          sql.NullInt64
		name        sql.NullString
		path        sql.NullString
		description sql.NullString
	)

	if err := row.Scan(&id, &name, &path, &description); err != nil {
		return model.Bookmark{}, &model.DecodeError{Err: err}
	}

	if !id.Valid {
		return model.Bookmark{}, &model.DecodeError{Column: "id", Err: errors.New("NULL id")}
	}

	return model.Bookmark{
		ID:          id.Int64,
		Name:        nullableString(name),
		Path:        nullableString(path),
		Description: nullableString(description),
	}, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

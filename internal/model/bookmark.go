package model

// Bookmark represents a named reference to a canonical filesystem path.
type Bookmark struct {
	ID          int64   // 0 = not yet persisted
	Name        *string // nil = no display label
	Path        *string // absolute, symlink-free
	Description *string // nil = no annotation
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Name        *string
	Path        string
	Description *string
}

// NewBookmark creates an unpersisted Bookmark. The path is expected to be
// canonical already.
func NewBookmark(params NewBookmarkParams) Bookmark {
	path := params.Path
	return Bookmark{
		Name:        cloneString(params.Name),
		Path:        &path,
		Description: cloneString(params.Description),
	}
}

// Persisted reports whether the bookmark carries a store-assigned ID.
func (b Bookmark) Persisted() bool {
	return b.ID > 0
}

// NameOr returns the name, or fallback if the name is unset.
func (b Bookmark) NameOr(fallback string) string {
	return deref(b.Name, fallback)
}

// PathOr returns the path, or fallback if the path is unset.
func (b Bookmark) PathOr(fallback string) string {
	return deref(b.Path, fallback)
}

// DescriptionOr returns the description, or fallback if it is unset.
func (b Bookmark) DescriptionOr(fallback string) string {
	return deref(b.Description, fallback)
}

// Clone returns a deep copy so callers never share string pointers with the store.
func (b Bookmark) Clone() Bookmark {
	return Bookmark{
		ID:          b.ID,
		Name:        cloneString(b.Name),
		Path:        cloneString(b.Path),
		Description: cloneString(b.Description),
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

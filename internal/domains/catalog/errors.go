package catalog

import "errors"

// Repository-level errors
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)

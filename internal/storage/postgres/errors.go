package postgres

import "errors"

// ErrNotFound marks lookups for rows that do not exist.
var ErrNotFound = errors.New("not found")

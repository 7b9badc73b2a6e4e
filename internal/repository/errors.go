// Package repository is the only code that reads or writes catalog rows.
// It performs no validation: callers normalize and validate input first.
package repository

import "errors"

// ErrNotFound is returned by GetByID when no row has the requested id.
// Update and Delete never return it; they are silent no-ops for unknown ids.
var ErrNotFound = errors.New("record not found")

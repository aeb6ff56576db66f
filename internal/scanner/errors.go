package scanner

import (
	"errors"
	"fmt"
)

// ErrVariantsDirNotFound indicates that one of the expected
// subdirectories does not exist under the chosen folder.
var ErrVariantsDirNotFound = errors.New("scanner: variants directory not found")

// DirError reports a subdirectory that could not be listed.
type DirError struct {
	Dir     string
	Wrapped error
}

// Error implements the error interface.
func (e *DirError) Error() string {
	return fmt.Sprintf("scanner: cannot read %s: %v", e.Dir, e.Wrapped)
}

// Unwrap returns the underlying error.
func (e *DirError) Unwrap() error {
	return e.Wrapped
}

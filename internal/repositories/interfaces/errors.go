package interfaces

import "errors"

// ErrNotFound is returned when a document does not exist. Wrapped by the
// repositories so callers can test with errors.Is.
var ErrNotFound = errors.New("not found")

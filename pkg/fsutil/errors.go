package fsutil

import "errors"

// ErrEmptyOutputPath is returned when a file write is requested without an
// output path.
var ErrEmptyOutputPath = errors.New("output path must not be empty")

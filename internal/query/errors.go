package query

import "errors"

// Query outcome sentinels. Every query operation returns one of these
// instead of raising; the two must never be conflated in user output.
var (
	// ErrTableNotLoaded means the backing dataset never loaded.
	ErrTableNotLoaded = errors.New("dataset not loaded")

	// ErrNotFound means the dataset loaded but no row matched. Empty or
	// unusable input folds into this outcome as well.
	ErrNotFound = errors.New("no matching records found")
)

package dataset

import (
	"context"
	"io"
)

// Getter fetches one dataset object by key. Implemented by ObjectStore;
// tests substitute in-memory fakes.
type Getter interface {
	// Get opens the object for reading. The caller closes the reader.
	// A missing object is reported as ErrDatasetNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

package dataset

import "errors"

var (
	// ErrDatasetNotFound is returned when the dataset object does not
	// exist in the bucket.
	ErrDatasetNotFound = errors.New("dataset: not found")

	// ErrMalformedDataset is returned when the object is neither a JSON
	// array nor newline-delimited JSON objects.
	ErrMalformedDataset = errors.New("dataset: malformed content")

	// ErrNoRecords is returned when no usable rows remain after skipping
	// summary rows and rows without embeddings.
	ErrNoRecords = errors.New("dataset: no usable records")

	// ErrDatasetTooLarge is returned when the dataset exceeds the
	// per-run vector ceiling.
	ErrDatasetTooLarge = errors.New("dataset: exceeds per-run vector limit")
)

package writer

import "errors"

var (
	// ErrNothingUpserted is returned when the provider acknowledged zero
	// vectors. A run that writes nothing is a failed run and emits no
	// summary.
	ErrNothingUpserted = errors.New("writer: provider acknowledged zero vectors")

	// ErrNoWriter is returned when no provider writer could be built for
	// the configured provider.
	ErrNoWriter = errors.New("writer: no writer for provider")
)

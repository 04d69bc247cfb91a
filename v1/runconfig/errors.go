package runconfig

import "errors"

// Classified validation errors. All of them are produced before any network
// call is made.
var (
	// ErrMissingCredential is returned when no API key was provided.
	ErrMissingCredential = errors.New("runconfig: api_key is required")

	// ErrInvalidProvider is returned for providers outside the whitelist.
	ErrInvalidProvider = errors.New("runconfig: provider must be one of: pinecone, qdrant")

	// ErrInvalidName is returned for a malformed index/collection name.
	ErrInvalidName = errors.New("runconfig: invalid index/collection name")

	// ErrInvalidClusterURL is returned when the Qdrant cluster URL is
	// missing or does not match the cloud.qdrant.io pattern.
	ErrInvalidClusterURL = errors.New("runconfig: invalid qdrant cluster url")

	// ErrInvalidNamespace is returned for a malformed Pinecone namespace.
	ErrInvalidNamespace = errors.New("runconfig: invalid namespace")

	// ErrInvalidDistance is returned for an unknown Qdrant distance metric.
	ErrInvalidDistance = errors.New("runconfig: distance metric must be one of: Cosine, Dot, Euclid")

	// ErrInvalidDatasetID is returned for a malformed dataset reference.
	ErrInvalidDatasetID = errors.New("runconfig: invalid dataset_id")

	// ErrInvalidField is returned for a malformed id_field name.
	ErrInvalidField = errors.New("runconfig: invalid id_field")

	// ErrNoInput is returned when neither dataset_id nor vectors was given.
	ErrNoInput = errors.New("runconfig: no input: supply either dataset_id or vectors")

	// ErrTooManyVectors is returned when the literal vectors array exceeds
	// the per-run ceiling.
	ErrTooManyVectors = errors.New("runconfig: too many vectors")

	// ErrInvalidVector is returned for a literal vector without a usable
	// embedding array.
	ErrInvalidVector = errors.New("runconfig: invalid vector")
)

var validationErrors = []error{
	ErrMissingCredential,
	ErrInvalidProvider,
	ErrInvalidName,
	ErrInvalidClusterURL,
	ErrInvalidNamespace,
	ErrInvalidDistance,
	ErrInvalidDatasetID,
	ErrInvalidField,
	ErrNoInput,
	ErrTooManyVectors,
	ErrInvalidVector,
}

// IsValidationError reports whether err belongs to this package's
// classified validation taxonomy.
func IsValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

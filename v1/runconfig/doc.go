// Package runconfig validates raw run input and normalizes it into an
// immutable Config consumed by every other component.
//
// Validation is a pure function over the input: it performs no network
// calls and has no side effects, so a run that fails validation is
// guaranteed to have touched neither provider.
//
// # Security model
//
//   - API keys are checked for presence only; they are never echoed into
//     errors, logs, or the run summary.
//   - Qdrant cluster URLs must match the *.cloud.qdrant.io pattern, which
//     prevents the writer from being pointed at arbitrary hosts (SSRF).
//   - The Pinecone data-plane host is never user-supplied; it is resolved
//     through the hardcoded control plane by the pinecone package.
//   - Index/collection names, dataset IDs and field names are matched
//     against strict identifier patterns, and control characters are
//     stripped from all string inputs.
//
// # Input precedence
//
// Either DatasetID or Vectors must be supplied. When both are present the
// dataset takes priority and the literal vectors are ignored; this is
// documented precedence, not a validation error.
//
// # Usage
//
//	cfg, err := runconfig.Validate(input)
//	if err != nil {
//	    // classified: runconfig.IsValidationError(err) == true
//	    return err
//	}
package runconfig

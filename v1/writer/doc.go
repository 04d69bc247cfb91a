// Package writer orchestrates a single upsert run end to end.
//
// A run moves through a fixed sequence of states:
//
//	Idle → Loading → Validating → Writing → Summarizing → Done
//
// and drops to Failed from any state on the first unrecoverable error.
// There is no partial-success mode and no mid-run resume; per-batch retry
// lives inside the provider writers.
//
// Loading pulls rows from the referenced dataset when one is configured,
// otherwise from the literal vectors array. Validating turns rows into
// records: the configured ID field supplies the vector ID when it holds a
// non-empty string, otherwise a fresh UUID is assigned; every input field
// except the embedding and bookkeeping fields becomes metadata. Writing
// hands the records to the selected provider writer. Summarizing computes
// the fee and assembles the single immutable run summary; a failed run
// emits none, and a run the provider acknowledged zero vectors for counts
// as failed.
//
// Credential material never reaches a log line or an error message; all
// surfaced text passes through the redactor first.
package writer

// Package dataset loads embedding rows from S3-compatible object storage.
//
// A dataset ID names an object key inside the configured bucket. Objects
// hold the output of an upstream embedding stage, either as a JSON array of
// row objects or as newline-delimited JSON (one row per line). Rows are
// generic maps; the caller decides which fields become the vector, the ID
// and the metadata.
//
// The loader applies the hygiene rules of the ingestion pipeline:
//
//   - rows flagged with "_summary": true are prior-stage bookkeeping and
//     are skipped;
//   - rows without a non-empty "embedding" array are skipped and counted;
//   - an empty result fails with ErrNoRecords;
//   - datasets past the run ceiling fail with ErrDatasetTooLarge.
//
// # Usage
//
//	store, err := dataset.NewObjectStore(cfg)
//	if err != nil {
//	    return err
//	}
//	loader := dataset.NewLoader(store, log)
//	rows, err := loader.Load(ctx, "embeddings-2024-07-01")
package dataset

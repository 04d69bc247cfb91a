// Package pricing computes the deterministic per-vector fee for a run.
//
// The model charges a flat rate per vector upserted: $0.0004 per vector,
// i.e. $0.40 per 1,000 vectors. This is the pipeline's fee only; the user
// also pays the vector database provider through their own account.
//
// Calculate is a pure function with no side effects:
//
//	billing := pricing.Calculate(1500)
//	// billing.Amount == 0.6
package pricing

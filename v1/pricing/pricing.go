package pricing

import "math"

// RatePerVector is the fee charged per vector upserted ($0.40 per 1,000).
const RatePerVector = 0.0004

// Billing holds the fee breakdown included in the run summary.
type Billing struct {
	// TotalVectors is the number of vectors the fee was computed for.
	TotalVectors int `json:"total_vectors"`

	// Amount is the total fee in USD, rounded to 6 decimal places.
	Amount float64 `json:"amount"`

	// RatePerVector is the fee per single vector.
	RatePerVector float64 `json:"rate_per_vector"`
}

// Calculate computes the fee for the given vector count.
func Calculate(totalVectors int) Billing {
	amount := math.Round(float64(totalVectors)*RatePerVector*1e6) / 1e6
	return Billing{
		TotalVectors:  totalVectors,
		Amount:        amount,
		RatePerVector: RatePerVector,
	}
}

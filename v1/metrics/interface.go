package metrics

import "time"

// Collector is the recording surface used by the writers and orchestrator.
// It is implemented by the concrete *Metrics type and by the no-op returned
// from Nop.
type Collector interface {
	// AddVectorsUpserted adds n to the vectors-upserted counter.
	AddVectorsUpserted(provider string, n int)

	// IncBatches increments the batches-sent counter.
	IncBatches(provider string)

	// IncRetries increments the retry-attempts counter.
	IncRetries(provider string)

	// ObserveBatchDuration records the latency of one upsert batch.
	ObserveBatchDuration(provider string, start time.Time)
}

// Nop returns a Collector that discards all observations.
func Nop() Collector {
	return nopCollector{}
}

type nopCollector struct{}

func (nopCollector) AddVectorsUpserted(string, int)         {}
func (nopCollector) IncBatches(string)                      {}
func (nopCollector) IncRetries(string)                      {}
func (nopCollector) ObserveBatchDuration(string, time.Time) {}

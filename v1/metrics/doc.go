// Package metrics exposes Prometheus metrics for the upsert pipeline.
//
// Each process owns an isolated registry (wrapped with a constant service
// label) and an HTTP server serving /metrics. The built-in collectors cover
// the run-level signals: vectors upserted, batches sent, retry attempts,
// and per-batch upsert latency, all labeled by provider.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "vecsink",
//	})
//	go m.Server.ListenAndServe()
//
//	m.AddVectorsUpserted("pinecone", 1000)
//	m.IncBatches("pinecone")
//
// # FX Module Integration
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config { ... }),
//	)
//
// Components that record metrics should depend on the [Collector]
// interface; [Nop] provides a discard implementation for tests.
package metrics

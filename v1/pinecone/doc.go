// Package pinecone implements the vectorstore.Writer for Pinecone indexes
// over the Pinecone REST API.
//
// # Security model
//
//   - The data-plane host is never user-supplied. It is resolved once per
//     run through the hardcoded control plane (https://api.pinecone.io)
//     and cached on the client.
//   - The API key travels only in the Api-Key header; any error body that
//     might echo it back is sanitized before being logged or returned.
//
// # Request shaping
//
// Records are split into batches no larger than the configured size (hard
// cap 1000, the Pinecone API limit) and sent sequentially to
// POST https://{host}/vectors/upsert. Metadata is filtered to the value
// types Pinecone accepts (string, number, bool, list of strings) and to the
// 40KB per-record limit. The namespace field is omitted when empty, which
// targets the default namespace.
//
// # Retries
//
// Each batch is retried up to 3 times with exponential backoff on HTTP 429
// and 5xx responses and on transport errors. Other 4xx responses fail the
// run immediately.
//
// # Usage
//
//	client, err := pinecone.NewClient(pinecone.Config{
//	    APIKey:    apiKey,
//	    IndexName: "my-index",
//	    Namespace: "prod",
//	    BatchSize: 200,
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := client.Upsert(ctx, records)
package pinecone

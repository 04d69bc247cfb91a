// Package redact strips credential material from error text before it is
// logged or returned to the caller.
//
// Provider responses can echo request headers back in error bodies, so every
// message that crossed a provider boundary is scrubbed: the full API key and
// any 8-character-or-longer prefix of it are replaced with "[REDACTED]".
//
//	safe := redact.String(body, apiKey)
//	return redact.Error(err, apiKey)
package redact

package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/vecsink/vecsink/v1/redact"
)

// doJSON sends one HTTP request against the Pinecone API. It marshals the
// payload as JSON, attaches the Api-Key and API version headers, classifies
// error statuses, and decodes a 200 response into out. Error bodies are
// sanitized before they can reach a log line or a caller.
func (c *Client) doJSON(ctx context.Context, method, url string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("X-Pinecone-Api-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", redact.Error(err, c.cfg.APIKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		safe := redact.String(string(raw), c.cfg.APIKey)

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return ErrUnauthorized
		case retryableStatus(resp.StatusCode):
			return &statusError{status: resp.StatusCode, body: safe}
		default:
			return fmt.Errorf("%w: http %d: %s", ErrUpsertRejected, resp.StatusCode, safe)
		}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// filterMetadata reduces record metadata to the value types Pinecone
// accepts (string, number, bool, list of strings) and enforces the
// per-record size limit by dropping the largest values first.
func filterMetadata(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}

	out := make(map[string]any, len(meta))
	for key, value := range meta {
		switch v := value.(type) {
		case string, bool, int, int64, float32, float64:
			out[key] = v
		case []string:
			out[key] = v
		case []any:
			strs := make([]string, 0, len(v))
			ok := true
			for _, e := range v {
				s, isStr := e.(string)
				if !isStr {
					ok = false
					break
				}
				strs = append(strs, s)
			}
			if ok {
				out[key] = strs
			}
		}
	}

	for len(out) > 0 && metadataSize(out) > MaxMetadataBytes {
		dropLargestValue(out)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// metadataSize measures the JSON-encoded size of a metadata map.
func metadataSize(meta map[string]any) int {
	data, err := json.Marshal(meta)
	if err != nil {
		return 0
	}
	return len(data)
}

// dropLargestValue removes the single largest metadata entry. Keys are
// sorted so repeated truncation is deterministic.
func dropLargestValue(meta map[string]any) {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	largestKey := ""
	largestSize := -1
	for _, k := range keys {
		data, err := json.Marshal(meta[k])
		if err != nil {
			continue
		}
		if len(data) > largestSize {
			largestKey, largestSize = k, len(data)
		}
	}
	delete(meta, largestKey)
}

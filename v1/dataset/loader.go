package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/runconfig"
)

// maxRowBytes bounds a single NDJSON line. Rows carry one embedding plus
// metadata; 4MB is far beyond anything legitimate.
const maxRowBytes = 4 * 1024 * 1024

// Loader streams dataset objects into row maps.
type Loader struct {
	getter Getter
	log    *logger.Logger
}

// NewLoader wires a loader over any Getter. A nil logger discards output.
func NewLoader(getter Getter, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{getter: getter, log: log}
}

// Load fetches the object and returns its usable rows in input order.
// Summary rows and rows without embeddings are skipped; see the package
// documentation for the full hygiene rules.
func (l *Loader) Load(ctx context.Context, datasetID string) ([]map[string]any, error) {
	rc, err := l.getter.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	reader := bufio.NewReader(rc)
	leading, err := firstByte(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: empty object", ErrNoRecords)
	}

	var rows []map[string]any
	if leading == '[' {
		rows, err = decodeArray(reader)
	} else {
		rows, err = decodeLines(reader)
	}
	if err != nil {
		return nil, err
	}

	usable := make([]map[string]any, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if isSummary, _ := row["_summary"].(bool); isSummary {
			continue
		}
		if !hasEmbedding(row) {
			skipped++
			continue
		}
		usable = append(usable, row)
		if len(usable) > runconfig.MaxRunVectors {
			return nil, fmt.Errorf("%w: more than %d rows", ErrDatasetTooLarge, runconfig.MaxRunVectors)
		}
	}

	if skipped > 0 {
		l.log.Warn("skipped dataset rows without embeddings", nil, map[string]any{
			"dataset_id": datasetID,
			"skipped":    skipped,
		})
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: dataset %s", ErrNoRecords, datasetID)
	}

	l.log.Info("dataset loaded", nil, map[string]any{
		"dataset_id": datasetID,
		"rows":       len(usable),
	})
	return usable, nil
}

// firstByte peeks past leading whitespace without consuming the payload.
func firstByte(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := r.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}

// decodeArray streams a JSON array of row objects.
func decodeArray(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	if _, err := dec.Token(); err != nil { // opening bracket
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}

	var rows []map[string]any
	for dec.More() {
		var row map[string]any
		if err := dec.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDataset, len(rows), err)
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, fmt.Errorf("%w: unterminated array", ErrMalformedDataset)
	}
	return rows, nil
}

// decodeLines reads newline-delimited JSON objects, tolerating blank lines.
func decodeLines(r io.Reader) ([]map[string]any, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRowBytes)

	var rows []map[string]any
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedDataset, len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	return rows, nil
}

// hasEmbedding reports whether the row carries a non-empty embedding array.
func hasEmbedding(row map[string]any) bool {
	switch v := row["embedding"].(type) {
	case []any:
		return len(v) > 0
	case []float64:
		return len(v) > 0
	case []float32:
		return len(v) > 0
	}
	return false
}

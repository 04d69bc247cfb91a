package writer

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

// bookkeeping fields that never become metadata.
var reservedFields = map[string]struct{}{
	"embedding":  {},
	"_summary":   {},
	"index":      {},
	"dimensions": {},
}

// buildRecords turns raw rows into upsert records. The configured ID field
// supplies the vector ID when it holds a non-empty string; otherwise a
// fresh UUID is assigned. Duplicate IDs pass through untouched (provider
// overwrite semantics). Every other field except the embedding and the
// bookkeeping fields becomes metadata.
func buildRecords(cfg *runconfig.Config, rows []map[string]any) ([]vectorstore.Record, error) {
	records := make([]vectorstore.Record, 0, len(rows))
	for i, row := range rows {
		values, err := toValues(row["embedding"])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", runconfig.ErrInvalidVector, i, err)
		}

		id, _ := row[cfg.IDField].(string)
		if id == "" {
			id = uuid.NewString()
		}

		var meta map[string]any
		for key, value := range row {
			if _, reserved := reservedFields[key]; reserved || key == cfg.IDField {
				continue
			}
			if meta == nil {
				meta = make(map[string]any)
			}
			meta[key] = value
		}

		records = append(records, vectorstore.Record{
			ID:       id,
			Values:   values,
			Metadata: meta,
		})
	}
	return records, nil
}

// toValues converts an embedding field into []float32, rejecting empty
// arrays, non-numeric elements and non-finite values.
func toValues(raw any) ([]float32, error) {
	switch v := raw.(type) {
	case []float32:
		if len(v) == 0 {
			return nil, fmt.Errorf("empty embedding")
		}
		for i, f := range v {
			if err := checkFinite(float64(f)); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
		out := make([]float32, len(v))
		copy(out, v)
		return out, nil
	case []float64:
		if len(v) == 0 {
			return nil, fmt.Errorf("empty embedding")
		}
		out := make([]float32, len(v))
		for i, f := range v {
			if err := checkFinite(f); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = float32(f)
		}
		return out, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("empty embedding")
		}
		out := make([]float32, len(v))
		for i, e := range v {
			f, err := toFloat(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = float32(f)
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("missing embedding")
	default:
		return nil, fmt.Errorf("embedding has type %T", raw)
	}
}

func toFloat(e any) (float64, error) {
	var f float64
	switch n := e.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("non-numeric element %T", e)
	}
	if err := checkFinite(f); err != nil {
		return 0, err
	}
	return f, nil
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite value")
	}
	return nil
}

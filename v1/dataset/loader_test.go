package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

// fakeGetter serves fixed object bodies by key.
type fakeGetter struct {
	objects map[string]string
}

func (f *fakeGetter) Get(_ context.Context, key string) (io.ReadCloser, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, key)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func loaderFor(objects map[string]string) *Loader {
	return NewLoader(&fakeGetter{objects: objects}, nil)
}

func TestLoad_JSONArray(t *testing.T) {
	loader := loaderFor(map[string]string{
		"ds-1": `[
			{"chunk_id": "a", "embedding": [0.1, 0.2], "text": "hello"},
			{"chunk_id": "b", "embedding": [0.3, 0.4], "text": "world"}
		]`,
	})

	rows, err := loader.Load(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["chunk_id"] != "a" || rows[1]["chunk_id"] != "b" {
		t.Errorf("rows out of order: %v", rows)
	}
}

func TestLoad_NDJSON(t *testing.T) {
	loader := loaderFor(map[string]string{
		"ds-1": `{"chunk_id": "a", "embedding": [0.1]}

{"chunk_id": "b", "embedding": [0.2]}
`,
	})

	rows, err := loader.Load(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestLoad_SkipsSummaryAndEmbeddinglessRows(t *testing.T) {
	loader := loaderFor(map[string]string{
		"ds-1": `[
			{"_summary": true, "total": 3},
			{"chunk_id": "a", "embedding": [0.1]},
			{"chunk_id": "no-embedding", "text": "skipped"},
			{"chunk_id": "empty", "embedding": []}
		]`,
	})

	rows, err := loader.Load(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0]["chunk_id"] != "a" {
		t.Errorf("expected only the usable row, got %v", rows)
	}
}

func TestLoad_NothingUsable(t *testing.T) {
	loader := loaderFor(map[string]string{
		"ds-1": `[{"_summary": true}, {"text": "no embedding"}]`,
	})

	_, err := loader.Load(context.Background(), "ds-1")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestLoad_EmptyObject(t *testing.T) {
	loader := loaderFor(map[string]string{"ds-1": "  \n "})
	_, err := loader.Load(context.Background(), "ds-1")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	loader := loaderFor(nil)
	_, err := loader.Load(context.Background(), "missing")
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"bad array": `[{"embedding": [0.1]},`,
		"bad line":  "{\"embedding\": [0.1]}\nnot json\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			loader := loaderFor(map[string]string{"ds-1": body})
			_, err := loader.Load(context.Background(), "ds-1")
			if !errors.Is(err, ErrMalformedDataset) {
				t.Fatalf("expected ErrMalformedDataset, got %v", err)
			}
		})
	}
}

func TestLoad_TooLarge(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50_001; i++ {
		fmt.Fprintf(&sb, `{"chunk_id": "c%d", "embedding": [0.1]}`+"\n", i)
	}
	loader := loaderFor(map[string]string{"ds-1": sb.String()})

	_, err := loader.Load(context.Background(), "ds-1")
	if !errors.Is(err, ErrDatasetTooLarge) {
		t.Fatalf("expected ErrDatasetTooLarge, got %v", err)
	}
}

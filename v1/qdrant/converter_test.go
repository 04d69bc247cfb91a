package qdrant

import (
	"testing"

	sdk "github.com/qdrant/go-client/qdrant"

	"github.com/vecsink/vecsink/v1/vectorstore"
)

func TestPointID_Numeric(t *testing.T) {
	id, remapped := pointID("42")
	if remapped {
		t.Error("numeric ID should not be remapped")
	}
	num, ok := id.PointIdOptions.(*sdk.PointId_Num)
	if !ok || num.Num != 42 {
		t.Errorf("expected numeric point ID 42, got %v", id)
	}
}

func TestPointID_UUID(t *testing.T) {
	const raw = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	id, remapped := pointID(raw)
	if remapped {
		t.Error("uuid ID should not be remapped")
	}
	u, ok := id.PointIdOptions.(*sdk.PointId_Uuid)
	if !ok || u.Uuid != raw {
		t.Errorf("expected uuid point ID, got %v", id)
	}
}

func TestPointID_ArbitraryStringIsDeterministic(t *testing.T) {
	first, remapped := pointID("doc-17-chunk-3")
	if !remapped {
		t.Fatal("arbitrary string ID should be remapped")
	}
	second, _ := pointID("doc-17-chunk-3")
	if first.GetUuid() == "" || first.GetUuid() != second.GetUuid() {
		t.Errorf("expected stable uuid, got %q and %q", first.GetUuid(), second.GetUuid())
	}

	other, _ := pointID("doc-17-chunk-4")
	if other.GetUuid() == first.GetUuid() {
		t.Error("different IDs must not collide")
	}
}

func TestToPoint_PreservesOriginalID(t *testing.T) {
	point := toPoint(vectorstore.Record{
		ID:       "doc-17-chunk-3",
		Values:   []float32{0.1, 0.2},
		Metadata: map[string]any{"title": "doc"},
	})

	payload := point.Payload
	if payload == nil {
		t.Fatal("expected payload")
	}
	if got := payload["id"].GetStringValue(); got != "doc-17-chunk-3" {
		t.Errorf("expected original id in payload, got %q", got)
	}
	if got := payload["title"].GetStringValue(); got != "doc" {
		t.Errorf("expected metadata kept, got %q", got)
	}
}

func TestToPoint_DoesNotOverwriteExistingIDField(t *testing.T) {
	point := toPoint(vectorstore.Record{
		ID:       "doc-17-chunk-3",
		Values:   []float32{0.1},
		Metadata: map[string]any{"id": "user-supplied"},
	})
	if got := point.Payload["id"].GetStringValue(); got != "user-supplied" {
		t.Errorf("expected user value kept, got %q", got)
	}
}

func TestToPoint_NoPayloadForBareRecord(t *testing.T) {
	point := toPoint(vectorstore.Record{ID: "7", Values: []float32{0.1}})
	if point.Payload != nil {
		t.Errorf("expected nil payload, got %v", point.Payload)
	}
}

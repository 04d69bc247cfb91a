package qdrant

import (
	"strconv"

	"github.com/google/uuid"
	sdk "github.com/qdrant/go-client/qdrant"

	"github.com/vecsink/vecsink/v1/vectorstore"
)

// Qdrant point IDs must be unsigned integers or UUIDs. Arbitrary string IDs
// are mapped to a deterministic UUIDv5 so re-running the same input updates
// the same points instead of duplicating them; the original ID is preserved
// in the payload so it stays queryable.
const originalIDKey = "id"

// toPoint converts one record into the wire point. Metadata passes through
// unfiltered; Qdrant payloads accept arbitrary JSON.
func toPoint(rec vectorstore.Record) *sdk.PointStruct {
	id, remapped := pointID(rec.ID)

	payload := rec.Metadata
	if remapped {
		withID := make(map[string]any, len(rec.Metadata)+1)
		for k, v := range rec.Metadata {
			withID[k] = v
		}
		if _, taken := withID[originalIDKey]; !taken {
			withID[originalIDKey] = rec.ID
		}
		payload = withID
	}

	point := &sdk.PointStruct{
		Id:      id,
		Vectors: sdk.NewVectors(rec.Values...),
	}
	if len(payload) > 0 {
		point.Payload = sdk.NewValueMap(payload)
	}
	return point
}

// pointID normalizes a record ID into a valid Qdrant point ID. The second
// return reports whether the ID had to be remapped.
func pointID(id string) (*sdk.PointId, bool) {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return sdk.NewIDNum(n), false
	}
	if uuid.Validate(id) == nil {
		return sdk.NewID(id), false
	}
	derived := uuid.NewSHA1(uuid.NameSpaceOID, []byte(id))
	return sdk.NewID(derived.String()), true
}

package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONColumn marshals v for a jsonb column. A nil slice is stored as [].
func toJSONColumn[T any](v []T) datatypes.JSON {
	if v == nil {
		v = []T{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}

	return datatypes.JSON(raw)
}

// fromJSONColumn decodes a jsonb array column, tolerating NULL and malformed values.
func fromJSONColumn[T any](raw datatypes.JSON) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []T{}
	}

	return out
}

// rawToColumn stores an opaque document fragment; nil stays NULL.
func rawToColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}

	return datatypes.JSON(raw)
}

// columnToRaw returns an opaque document fragment; NULL becomes nil.
func columnToRaw(col datatypes.JSON) json.RawMessage {
	if len(col) == 0 || string(col) == "null" {
		return nil
	}

	return json.RawMessage(col)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// Package jsonutil converts between Go values and JSON columns.
package jsonutil

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// StringsToJSON encodes a string list for a JSON column. nil is stored as [].
func StringsToJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(values)
	if err != nil {
		// []string always marshals
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// JSONToStrings decodes a JSON column into a string list. Empty or null
// columns yield an empty, non-nil slice.
func JSONToStrings(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

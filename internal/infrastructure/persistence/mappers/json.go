package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// marshalJSON encodes a slice into a JSON column, mapping nil to an empty
// array so columns never hold SQL NULL.
func marshalJSON[T any](values []T) (datatypes.JSON, error) {
	if values == nil {
		values = []T{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// unmarshalJSON decodes a JSON column into a slice, mapping NULL/empty to nil.
func unmarshalJSON[T any](raw datatypes.JSON) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var values []T
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return values, nil
}

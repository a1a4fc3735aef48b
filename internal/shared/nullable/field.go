// Package nullable models JSON fields in partial updates, where an absent
// key, an explicit null and a value all mean different things.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field records whether a key was present in the payload and whether it was null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a set, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// HasValue reports a present, non-null value.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// Ptr converts the field into the pointer form used by entities: nil when
// null, a copy of the value otherwise. Callers check Set first.
func (f Field[T]) Ptr() *T {
	if !f.HasValue() {
		return nil
	}
	v := f.Value
	return &v
}

// ValidationValue exposes the wrapped value to the request validator;
// unset or null fields validate as absent.
func (f Field[T]) ValidationValue() any {
	if !f.HasValue() {
		return nil
	}
	return f.Value
}

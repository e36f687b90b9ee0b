package wire

import (
	"encoding/json"
	"fmt"
)

// Json wraps a value that travels as a PrefixedString of UTF-8 JSON text
// (chat components, status responses). T is any Go value with standard
// encoding/json struct tags.
type Json[T any] struct {
	Value T
}

func (j Json[T]) ToBytes() (ByteArray, error) {
	raw, err := json.Marshal(j.Value)
	if err != nil {
		return nil, fmt.Errorf("wire: Json encode: %w", err)
	}
	return String(raw).ToBytes()
}

func (j *Json[T]) FromBytes(data ByteArray) (int, error) {
	var s String
	n, err := s.FromBytes(data)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal([]byte(s), &j.Value); err != nil {
		return 0, &InvalidFormatError{Kind: "JSON", Err: err}
	}
	return n, nil
}

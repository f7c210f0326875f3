package model

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Nullable distinguishes between a field that is absent from a payload,
// one that is explicitly null, and one that carries a value.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func NewNullable[T any](value T) Nullable[T] {
	return Nullable[T]{Set: true, Value: value}
}

func NewNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON implements [json.Unmarshaler]. It is only invoked when the
// field is present in the payload, which is what flips Set.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		n.Null = true
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// MarshalJSON implements [json.Marshaler]. Combined with the omitzero
// tag option, an unset value disappears from the payload instead of
// serializing as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}

	data, err := json.Marshal(n.Value)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

var (
	_ json.Unmarshaler = &Nullable[string]{}
	_ json.Marshaler   = Nullable[string]{}
)

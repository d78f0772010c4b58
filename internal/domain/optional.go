package domain

import "encoding/json"

// Optional is a tri-state JSON field used for partial updates. It
// distinguishes a field that was absent from the payload (Set=false),
// explicitly null (Set=true, Valid=false), and carrying a value
// (Set=true, Valid=true). encoding/json cannot express the difference
// between absent and null with plain pointers, and no library in use
// here covers it, so the decoding is done by hand.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NewOptional returns an Optional holding the given value.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: value}
}

// NullOptional returns an Optional representing an explicit JSON null.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when
// the field is present in the payload, so Set is always true here;
// absent fields keep the zero Optional.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler for symmetry; unset and null
// both serialize as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Or returns the contained value when one is present, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Set && o.Valid {
		return o.Value
	}
	return fallback
}

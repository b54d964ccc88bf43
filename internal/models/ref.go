package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another record. It carries the referenced record's
// id and, once resolved, the record itself. Callers can tell the two states
// apart without shape-checking: Record == nil means only the id is known.
type Ref[T any] struct {
	ID     string
	Record *T
}

// NewRef returns an unresolved reference to the given id.
func NewRef[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Resolved reports whether the referenced record has been attached.
func (r Ref[T]) Resolved() bool {
	return r.Record != nil
}

// MarshalJSON writes the full record when resolved, otherwise just the id
// string. This mirrors the wire format the frontend expects: a populated
// reference is an object, an unpopulated one is the raw id.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either shape: an id string or a full record object.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	if data[0] == '"' {
		r.Record = nil
		return json.Unmarshal(data, &r.ID)
	}

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	// Pull the id out of the object so the reference stays addressable
	// even after the record is dropped.
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	r.ID = head.ID
	r.Record = &rec
	return nil
}

// Unresolve strips the attached record, keeping only the id, so a resolved
// reference can be persisted without a denormalized copy of its parent.
func (r *Ref[T]) Unresolve() {
	r.Record = nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyPatch is returned when a dynamic update body names no columns.
var ErrEmptyPatch = errors.New("patch has no fields")

// UnknownFieldError reports a body key that is not an updatable column.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("Unknown field: %s", e.Field)
}

// InvalidValueError reports a non-scalar JSON value for a column.
type InvalidValueError struct {
	Field string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid value for field: %s", e.Field)
}

// PatchField is one column assignment. A nil Value writes NULL.
type PatchField struct {
	Column string
	Value  interface{}
}

// Patch is the exact set of columns supplied by the caller, sorted by column name.
type Patch struct {
	Fields []PatchField
}

// Len returns the number of columns in the patch.
func (p Patch) Len() int {
	return len(p.Fields)
}

// Has reports whether the patch assigns the column.
func (p Patch) Has(column string) bool {
	for _, f := range p.Fields {
		if f.Column == column {
			return true
		}
	}
	return false
}

// PatchSchema whitelists the columns a dynamic update may write.
type PatchSchema struct {
	columns map[string]struct{}
}

// NewPatchSchema builds a schema for the given column names.
func NewPatchSchema(columns ...string) PatchSchema {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return PatchSchema{columns: set}
}

// Allows reports whether the column may be patched.
func (s PatchSchema) Allows(column string) bool {
	_, ok := s.columns[column]
	return ok
}

// Parse decodes a JSON object body into a Patch. Scalars are passed through untouched so the
// store performs the same coercion it applies to inserts; JSON null becomes NULL.
func (s PatchSchema) Parse(body []byte) (Patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Patch{}, err
	}
	if len(raw) == 0 {
		return Patch{}, ErrEmptyPatch
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]PatchField, 0, len(keys))
	for _, key := range keys {
		if !s.Allows(key) {
			return Patch{}, &UnknownFieldError{Field: key}
		}
		value, err := decodeScalar(raw[key])
		if err != nil {
			return Patch{}, &InvalidValueError{Field: key}
		}
		fields = append(fields, PatchField{Column: key, Value: value})
	}
	return Patch{Fields: fields}, nil
}

func decodeScalar(raw json.RawMessage) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	switch typed := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		return typed.String(), nil
	case string, bool:
		return typed, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

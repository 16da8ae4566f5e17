package ecfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Configuration is the contract a configuration object must satisfy: it
// serializes itself to a flat string-keyed map and constructs a new
// instance of its own kind from such a map. FromMap acts as a
// constructor and is usually called on a zero-valued prototype.
type Configuration interface {
	// ToMap returns the configuration's serialized key-value form.
	ToMap() (map[string]any, error)
	// FromMap builds a new configuration instance from m.
	FromMap(m map[string]any) (Configuration, error)
}

// MapConfig is an open-ended, dynamically shaped configuration: an
// arbitrary string-keyed map that is its own serialized form. Any map
// shape is accepted; no validation is performed.
type MapConfig map[string]any

// ToMap returns the map itself.
func (c MapConfig) ToMap() (map[string]any, error) {
	return c, nil
}

// FromMap wraps m directly as the new configuration instance. A nil map
// yields an empty configuration.
func (MapConfig) FromMap(m map[string]any) (Configuration, error) {
	if m == nil {
		m = map[string]any{}
	}
	return MapConfig(m), nil
}

// Record is a fixed-schema configuration whose fields are declared by the
// struct type T. Serialization follows encoding/json field rules, so json
// struct tags control key names and `json:"-"` excludes a field.
//
// Construction from a map is strict about unknown keys and value types
// (both produce a SchemaError) but permissive about absent keys: missing
// fields take their Go zero values, which is also how the default
// instance for a missing file is built.
//
// Fields of struct type (directly or behind a pointer) are not supported
// and are rejected with a SchemaError; records are flat by design.
type Record[T any] struct {
	// Value holds the typed configuration data
	Value T
}

// NewRecord returns a Record wrapping v.
func NewRecord[T any](v T) *Record[T] {
	return &Record[T]{Value: v}
}

// ToMap flattens the record's declared fields into a map.
func (r *Record[T]) ToMap() (map[string]any, error) {
	t, err := recordType[T]()
	if err != nil {
		return nil, err
	}
	if err := checkFlat(t); err != nil {
		return nil, err
	}
	data, err := json.Marshal(r.Value)
	if err != nil {
		return nil, &SchemaError{Type: t.Name(), Reason: "cannot serialize record fields", Err: err}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &SchemaError{Type: t.Name(), Reason: "cannot flatten record fields", Err: err}
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// FromMap constructs a new record by matching map keys to field names.
func (r *Record[T]) FromMap(m map[string]any) (Configuration, error) {
	t, err := recordType[T]()
	if err != nil {
		return nil, err
	}
	if err := checkFlat(t); err != nil {
		return nil, err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, &SchemaError{Type: t.Name(), Reason: "cannot serialize input map", Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	out := new(Record[T])
	if err := dec.Decode(&out.Value); err != nil {
		return nil, &SchemaError{Type: t.Name(), Reason: "map does not match record fields", Err: err}
	}
	return out, nil
}

// recordType resolves the struct type behind T, following pointers.
func recordType[T any]() (reflect.Type, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, &SchemaError{Type: t.String(), Reason: "record type must be a struct"}
	}
	return t, nil
}

// checkFlat rejects struct-typed fields. Slices and maps of primitive
// values are fine; nested records are not.
func checkFlat(t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("json") == "-" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			return &SchemaError{
				Type:   t.Name(),
				Reason: fmt.Sprintf("field %s: nested struct fields are not supported", f.Name),
			}
		}
	}
	return nil
}

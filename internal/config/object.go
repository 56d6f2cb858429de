// Package config reads and writes the persisted notification config. It understands
// every file generation ever written and only ever writes the current one.
package config

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotObject is returned when a JSON value that must be an object is not.
	ErrNotObject = errors.New("not a JSON object")

	// ErrMissingField is returned when a required field is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a field has the wrong type or an invalid value.
	ErrInvalidField = errors.New("invalid field")

	// ErrAllGenerationsFailed is returned by Decode when no generation parser accepts the data.
	ErrAllGenerationsFailed = errors.New("no config generation could parse the data")
)

var jsonNull = []byte("null")

// fields lists keys and the destinations their values decode into.
type fields []struct {
	key string
	dst any
}

// object is a JSON object with its values left undecoded.
type object map[string]json.RawMessage

func asObject(data []byte) (object, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrNotObject
	}

	var o object
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, errors.Wrap(ErrNotObject, err.Error())
	}

	return o, nil
}

// has returns true if key is present with a non-null value.
func (o object) has(key string) bool {
	raw, ok := o[key]

	return ok && !bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// require decodes the value of key into dst.
func (o object) require(key string, dst any) error {
	if !o.has(key) {
		return errors.Wrapf(ErrMissingField, "%q", key)
	}

	return o.decode(key, dst)
}

// optional decodes the value of key into dst when present. dst is left unchanged
// otherwise.
func (o object) optional(key string, dst any) error {
	if !o.has(key) {
		return nil
	}

	return o.decode(key, dst)
}

// requireAll calls require for every field in order and stops at the first error.
func (o object) requireAll(fs fields) error {
	for _, f := range fs {
		if err := o.require(f.key, f.dst); err != nil {
			return err
		}
	}

	return nil
}

// optionalAll calls optional for every field in order and stops at the first error.
func (o object) optionalAll(fs fields) error {
	for _, f := range fs {
		if err := o.optional(f.key, f.dst); err != nil {
			return err
		}
	}

	return nil
}

func (o object) decode(key string, dst any) error {
	if err := json.Unmarshal(o[key], dst); err != nil {
		return errors.Wrapf(ErrInvalidField, "%q: %v", key, err)
	}

	return nil
}

// object returns the value of key as an object.
func (o object) object(key string) (object, error) {
	if !o.has(key) {
		return nil, errors.Wrapf(ErrMissingField, "%q", key)
	}

	child, err := asObject(o[key])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidField, "%q: %v", key, err)
	}

	return child, nil
}

// array returns the elements of the array at key, undecoded.
func (o object) array(key string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := o.require(key, &items); err != nil {
		return nil, err
	}

	return items, nil
}

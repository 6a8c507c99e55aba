// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPayload is returned when an update body is not a flat JSON object.
var ErrInvalidPayload = errors.New("update payload must be a JSON object")

// UpdatePayload is an ordered set of field/value pairs for a partial update.
// Iteration order is insertion order; setting an existing field keeps its position.
type UpdatePayload struct {
	keys   []string
	values map[string]any
}

// NewUpdatePayload creates an empty payload.
func NewUpdatePayload() *UpdatePayload {
	return &UpdatePayload{values: make(map[string]any)}
}

// Set adds or replaces a field.
func (p *UpdatePayload) Set(field string, value any) *UpdatePayload {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[field]; !exists {
		p.keys = append(p.keys, field)
	}
	p.values[field] = value
	return p
}

// Get returns the value for field and whether it is present.
func (p *UpdatePayload) Get(field string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[field]
	return v, ok
}

// Has reports whether field is present.
func (p *UpdatePayload) Has(field string) bool {
	_, ok := p.Get(field)
	return ok
}

// Len returns the number of fields.
func (p *UpdatePayload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the field names in insertion order.
func (p *UpdatePayload) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Values returns the values in insertion order.
func (p *UpdatePayload) Values() []any {
	if p == nil {
		return nil
	}
	out := make([]any, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.values[k])
	}
	return out
}

// DecodeUpdatePayload reads a flat JSON object, keeping its key order.
// Numbers are kept as json.Number so validators can decide between int and float.
// Nested objects and arrays are decoded into generic values.
func DecodeUpdatePayload(body []byte) (*UpdatePayload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrInvalidPayload
	}

	payload := NewUpdatePayload()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, ErrInvalidPayload
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidPayload, key, err)
		}
		payload.Set(key, value)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrInvalidPayload)
	}

	return payload, nil
}

package schemaguard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a single JSON document into generic values.
//
// Numbers are kept as json.Number so that integers stay distinguishable
// from floating-point values; plain json.Unmarshal would turn 5 into 5.0
// and make it fail an "integer" type.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: json: unexpected data after document", ErrDecode)
	}
	return v, nil
}

// DecodeYAML decodes a single YAML document into generic values.
// Integers decode as int and floats as float64.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}
	return v, nil
}

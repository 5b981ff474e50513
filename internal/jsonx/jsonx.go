// Package jsonx is the JSON collaborator used by the JOSE packages. It parses
// JSON text into trees whose objects keep their member order, and serializes
// such trees back to compact canonical text without HTML escaping.
package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when a JSON document is valid but is not a JSON object.
var ErrNotObject = errors.New("jsonx: value is not a JSON object")

// Parse parses the given JSON text into a tree. Objects are returned as
// Object values, arrays as []any, numbers as json.Number, and strings,
// booleans and null as their natural Go types.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("jsonx: failed to parse JSON: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonx: unexpected data after top-level value")
	}

	return value, nil
}

// ParseObject parses the given JSON text, requiring it to be a JSON object.
func ParseObject(data []byte) (Object, error) {
	value, err := Parse(data)
	if err != nil {
		return Object{}, err
	}
	obj, ok := value.(Object)
	if !ok {
		return Object{}, ErrNotObject
	}
	return obj, nil
}

// Marshal serializes the given value to canonical JSON text: compact, with
// object members in insertion order and without HTML escaping.
func Marshal(v any) ([]byte, error) {
	buff := bytes.NewBuffer(nil)

	enc := json.NewEncoder(buff)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("jsonx: failed to encode JSON: %w", err)
	}

	return bytes.TrimRight(buff.Bytes(), "\n"), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("invalid object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		// closing '}'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		// closing ']'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

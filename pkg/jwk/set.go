package jwk

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/cufyorg/jose/internal/jsonx"
)

// Set is a JWK set as defined in RFC 7517. It is immutable once
// constructed and safe for concurrent use.
//
// Keys are unique by identity: adding the same key pointer twice keeps
// one, while distinct keys sharing a "kid" are all kept.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-5
type Set struct {
	keys []Key
}

// NewSet returns a set holding the given keys, in order. Nil keys and
// repeated keys are skipped.
func NewSet(keys ...Key) Set {
	set := Set{keys: make([]Key, 0, len(keys))}
	for _, key := range keys {
		if key == nil || set.contains(key) {
			continue
		}
		set.keys = append(set.keys, key)
	}
	return set
}

// contains reports whether key, a pointer, is already in the set. Keys of
// any other kind have no identity and are never considered repeated.
func (s Set) contains(key Key) bool {
	if reflect.ValueOf(key).Kind() != reflect.Pointer {
		return false
	}
	return slices.ContainsFunc(s.keys, func(k Key) bool {
		return k == key
	})
}

// Keys returns the keys of the set, in order.
func (s Set) Keys() []Key {
	return slices.Clone(s.keys)
}

// Len returns the number of keys in the set.
func (s Set) Len() int {
	return len(s.keys)
}

// Validate validates every key of the set, returning an error if any
// of the keys are invalid.
func (s Set) Validate() error {
	if len(s.keys) == 0 {
		return fmt.Errorf("%w: no keys in JWK set", ErrInvalidKeySet)
	}

	for _, key := range s.keys {
		err := Validate(key.Parameters())
		if err != nil {
			return fmt.Errorf("key set validation error: %w", err)
		}
	}

	return nil
}

// JSON returns the set as a JWK set document holding every parameter of
// each key, private key material included.
func (s Set) JSON() ([]byte, error) {
	return s.marshal(Key.Parameters)
}

// PublicJSON returns the set as a JWK set document holding only the
// public parameters of each key, suitable for publishing.
func (s Set) PublicJSON() ([]byte, error) {
	return s.marshal(Key.PublicParameters)
}

func (s Set) marshal(params func(Key) Value) ([]byte, error) {
	keys := make([]Value, 0, len(s.keys))
	for _, key := range s.keys {
		keys = append(keys, params(key))
	}

	b, err := jsonx.Marshal(map[string]any{"keys": keys})
	if err != nil {
		return nil, fmt.Errorf("failed to encode JWK set: %w", err)
	}
	return b, nil
}

// KeyFactory builds a Key from the parameters of a key set member.
type KeyFactory func(Value) (Key, error)

// ParseOption is a functional option type used to configure ParseSet.
type ParseOption func(*parseConfig)

type parseConfig struct {
	factory KeyFactory
}

// WithKeyFactory sets the factory used to build each key. By default keys
// are built with NewKey.
func WithKeyFactory(factory KeyFactory) ParseOption {
	return func(c *parseConfig) {
		c.factory = factory
	}
}

// ParseSet parses a JWK set document, a JSON object with a "keys" array of
// JSON objects.
func ParseSet(data []byte, opts ...ParseOption) (Set, error) {
	config := &parseConfig{
		factory: func(v Value) (Key, error) { return NewKey(v) },
	}
	for _, opt := range opts {
		opt(config)
	}

	doc, err := jsonx.ParseObject(data)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrInvalidKeySet, err)
	}

	members, ok := doc.Get("keys")
	if !ok {
		return Set{}, fmt.Errorf("%w: missing %q member", ErrInvalidKeySet, "keys")
	}

	list, ok := members.([]any)
	if !ok {
		return Set{}, fmt.Errorf("%w: %q member is not an array", ErrInvalidKeySet, "keys")
	}

	keys := make([]Key, 0, len(list))
	for i, member := range list {
		obj, ok := member.(jsonx.Object)
		if !ok {
			return Set{}, fmt.Errorf("%w: key %d is not a JSON object", ErrInvalidKeySet, i)
		}

		if _, ok := obj.String(KeyType); !ok {
			return Set{}, fmt.Errorf("%w: %w: key %d: missing required parameter %q", ErrInvalidKeySet, ErrInvalidKey, i, KeyType)
		}

		key, err := config.factory(obj.Map())
		if err != nil {
			return Set{}, fmt.Errorf("key %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	return NewSet(keys...), nil
}

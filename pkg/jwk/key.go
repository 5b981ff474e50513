package jwk

import (
	"fmt"
	"maps"
	"slices"
)

// Key is a JSON Web Key as seen by key selection and by the crypto
// provider. Implementations must be safe for concurrent reads.
type Key interface {
	// Parameters returns all the parameters of the key, including
	// private key material.
	Parameters() Value

	// PublicParameters returns the parameters that are safe to publish.
	PublicParameters() Value

	// Kty returns the key type. It is never empty.
	Kty() string

	// Use returns the intended use of the key, or the empty string.
	Use() string

	// Kid returns the key ID, or the empty string.
	Kid() string

	// Alg returns the algorithm the key is meant for, or the empty string.
	Alg() string

	// KeyOps returns the permitted operations of the key, or nil when the
	// key does not declare any.
	KeyOps() []string
}

// ParameterKey is a Key described only by its parameters.
type ParameterKey struct {
	params Value
	kty    string
	use    string
	kid    string
	alg    string
	keyOps []string
}

var _ Key = (*ParameterKey)(nil)

// NewKey returns a key holding a copy of the given parameters. The
// parameters must carry a string "kty"; the optional "use", "kid" and
// "alg" must be strings and "key_ops" a list of strings.
func NewKey(v Value) (*ParameterKey, error) {
	kty, ok := v[KeyType].(string)
	if !ok || kty == "" {
		return nil, fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, KeyType)
	}

	k := &ParameterKey{params: maps.Clone(v), kty: kty}

	var err error
	if k.use, err = optionalString(v, PublicKeyUse); err != nil {
		return nil, err
	}
	if k.kid, err = optionalString(v, KeyID); err != nil {
		return nil, err
	}
	if k.alg, err = optionalString(v, Algorithm); err != nil {
		return nil, err
	}

	if value, ok := v[KeyOperations]; ok {
		ops, ok := stringList(value)
		if !ok {
			return nil, fmt.Errorf("%w: parameter %q is not a list of strings", ErrInvalidKey, KeyOperations)
		}
		k.keyOps = ops
	}

	return k, nil
}

func (k *ParameterKey) Parameters() Value       { return maps.Clone(k.params) }
func (k *ParameterKey) PublicParameters() Value { return PublicValue(k.params) }
func (k *ParameterKey) Kty() string             { return k.kty }
func (k *ParameterKey) Use() string             { return k.use }
func (k *ParameterKey) Kid() string             { return k.kid }
func (k *ParameterKey) Alg() string             { return k.alg }
func (k *ParameterKey) KeyOps() []string        { return slices.Clone(k.keyOps) }

func optionalString(v Value, name ParameterName) (string, error) {
	value, ok := v[name]
	if !ok {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: parameter %q is %T, not a string", ErrInvalidKey, name, value)
	}
	return s, nil
}

func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return slices.Clone(v), true
	case []any:
		list := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	default:
		return nil, false
	}
}

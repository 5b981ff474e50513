package provider

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cufyorg/jose/internal/jsonx"
	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwk/thumbprint"
	"github.com/cufyorg/jose/pkg/keyutil"
	jose "github.com/go-jose/go-jose/v4"
)

// Key is a JSON Web Key together with the cryptographic key it describes.
//
// Supported key material:
//   - RSA: *rsa.PrivateKey, *rsa.PublicKey
//   - EC (P-256, P-384, P-521, secp256k1): *ecdsa.PrivateKey, *ecdsa.PublicKey
//   - OKP (Ed25519): ed25519.PrivateKey, ed25519.PublicKey
//   - oct: []byte
type Key struct {
	*jwk.ParameterKey

	private any
	public  any
}

var _ jwk.Key = (*Key)(nil)

// Private returns the private (or secret) key material, if the key has any.
func (k *Key) Private() (any, bool) {
	return k.private, k.private != nil
}

// Public returns the public key material. For symmetric keys this is the
// secret itself.
func (k *Key) Public() any {
	return k.public
}

// NewKey builds a key from its JWK parameters.
func NewKey(v jwk.Value) (*Key, error) {
	params, err := jwk.NewKey(v)
	if err != nil {
		return nil, err
	}

	if err := jwk.Validate(v); err != nil {
		return nil, err
	}

	material, err := materialize(v)
	if err != nil {
		return nil, err
	}

	key := &Key{ParameterKey: params}

	switch m := material.(type) {
	case *rsa.PrivateKey:
		key.private, key.public = m, &m.PublicKey
	case *rsa.PublicKey:
		key.public = m
	case *ecdsa.PrivateKey:
		key.private, key.public = m, &m.PublicKey
	case *ecdsa.PublicKey:
		key.public = m
	case ed25519.PrivateKey:
		key.private, key.public = m, m.Public().(ed25519.PublicKey)
	case ed25519.PublicKey:
		key.public = m
	case []byte:
		key.private, key.public = m, m
	default:
		return nil, fmt.Errorf("%w: unsupported key material %T", jwk.ErrInvalidKey, material)
	}

	return key, nil
}

// ParseKey parses a single JWK document.
func ParseKey(data []byte) (*Key, error) {
	obj, err := jsonx.ParseObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jwk.ErrInvalidKey, err)
	}
	return NewKey(obj.Map())
}

// ParseSet parses a JWK set document into a set of *Key.
func ParseSet(data []byte) (jwk.Set, error) {
	return jwk.ParseSet(data, jwk.WithKeyFactory(func(v jwk.Value) (jwk.Key, error) {
		return NewKey(v)
	}))
}

// Materialize returns key as a *Key, rebuilding it from its parameters
// when it is some other implementation of jwk.Key.
func Materialize(key jwk.Key) (*Key, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: no key", jwk.ErrInvalidKey)
	}
	if k, ok := key.(*Key); ok {
		return k, nil
	}
	return NewKey(key.Parameters())
}

func materialize(v jwk.Value) (any, error) {
	if v[jwk.KeyType] == jwa.KeyTypeEC && v[jwk.Curve] == keyutil.CurveSecp256k1 {
		return secp256k1Key(v)
	}

	raw, err := jsonx.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jwk.ErrInvalidKey, err)
	}

	var webKey jose.JSONWebKey
	if err := webKey.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", jwk.ErrInvalidKey, err)
	}

	return webKey.Key, nil
}

func secp256k1Key(v jwk.Value) (any, error) {
	x, err := decodeCoordinate(v, jwk.X)
	if err != nil {
		return nil, err
	}
	y, err := decodeCoordinate(v, jwk.Y)
	if err != nil {
		return nil, err
	}

	curve := btcec.S256()
	if !curve.IsOnCurve(x, y) {
		return nil, fmt.Errorf("%w: point is not on curve %q", jwk.ErrInvalidKey, keyutil.CurveSecp256k1)
	}

	publicKey := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}

	if _, ok := v[jwk.D]; !ok {
		return publicKey, nil
	}

	d, err := decodeCoordinate(v, jwk.D)
	if err != nil {
		return nil, err
	}

	return &ecdsa.PrivateKey{PublicKey: *publicKey, D: d}, nil
}

func decodeCoordinate(v jwk.Value, name jwk.ParameterName) (*big.Int, error) {
	s, ok := v[name].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing required parameter %q", jwk.ErrInvalidKey, name)
	}

	b, err := base64.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: parameter %q: %w", jwk.ErrInvalidKey, name, err)
	}

	if len(b) != 32 {
		return nil, fmt.Errorf("%w: parameter %q must be 32 bytes, got %d", jwk.ErrInvalidKey, name, len(b))
	}

	return new(big.Int).SetBytes(b), nil
}

// KeyOption sets a parameter of a key built with FromCrypto.
type KeyOption func(jwk.Value)

// WithKeyID sets the "kid" parameter.
func WithKeyID(kid string) KeyOption {
	return func(v jwk.Value) { v[jwk.KeyID] = kid }
}

// WithUse sets the "use" parameter.
func WithUse(use string) KeyOption {
	return func(v jwk.Value) { v[jwk.PublicKeyUse] = use }
}

// WithAlgorithm sets the "alg" parameter.
func WithAlgorithm(alg jwa.Algorithm) KeyOption {
	return func(v jwk.Value) { v[jwk.Algorithm] = alg }
}

// WithKeyOps sets the "key_ops" parameter.
func WithKeyOps(ops ...string) KeyOption {
	return func(v jwk.Value) {
		list := make([]any, len(ops))
		for i, op := range ops {
			list[i] = op
		}
		v[jwk.KeyOperations] = list
	}
}

// FromCrypto builds a key from cryptographic key material. When no key ID
// is given, the RFC 7638 thumbprint of the key is used.
func FromCrypto(material any, opts ...KeyOption) (*Key, error) {
	var (
		v   jwk.Value
		err error
	)

	if ecKey, ok := secp256k1Material(material); ok {
		v = secp256k1Value(ecKey, material)
	} else {
		v, err = webKeyValue(material)
		if err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(v)
	}

	if kid, _ := v[jwk.KeyID].(string); kid == "" {
		kid, err := thumbprint.GenerateString(v, crypto.SHA256)
		if err != nil {
			return nil, err
		}
		v[jwk.KeyID] = kid
	}

	return NewKey(v)
}

func webKeyValue(material any) (jwk.Value, error) {
	raw, err := jose.JSONWebKey{Key: material}.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jwk.ErrInvalidKey, err)
	}

	obj, err := jsonx.ParseObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jwk.ErrInvalidKey, err)
	}

	return obj.Map(), nil
}

func secp256k1Material(material any) (*ecdsa.PublicKey, bool) {
	var publicKey *ecdsa.PublicKey
	switch m := material.(type) {
	case *ecdsa.PrivateKey:
		publicKey = &m.PublicKey
	case *ecdsa.PublicKey:
		publicKey = m
	default:
		return nil, false
	}

	name, err := keyutil.CurveName(publicKey.Curve)
	return publicKey, err == nil && name == keyutil.CurveSecp256k1
}

func secp256k1Value(publicKey *ecdsa.PublicKey, material any) jwk.Value {
	v := jwk.Value{
		jwk.KeyType: jwa.KeyTypeEC,
		jwk.Curve:   keyutil.CurveSecp256k1,
		jwk.X:       base64.Encode(publicKey.X.FillBytes(make([]byte, 32))),
		jwk.Y:       base64.Encode(publicKey.Y.FillBytes(make([]byte, 32))),
	}
	if privateKey, ok := material.(*ecdsa.PrivateKey); ok {
		v[jwk.D] = base64.Encode(privateKey.D.FillBytes(make([]byte, 32)))
	}
	return v
}

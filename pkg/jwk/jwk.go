// Package jwk implements JSON Web Keys (RFC 7517): the key capability
// contract used by the engine, immutable key sets, and the selection of
// the key to use for an operation.
package jwk

import (
	"errors"
	"fmt"
	"maps"

	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/jwa"
)

var (
	// ErrInvalidKeySet is returned when a key set document is not shaped
	// like {"keys": [...]}.
	ErrInvalidKeySet = errors.New("invalid JWK set")

	// ErrInvalidKey is returned when a key is not a JSON object with a
	// string "kty" parameter, or its parameters cannot be used.
	ErrInvalidKey = errors.New("invalid JWK")

	// ErrKeyNotFound is returned when no key of a set survives selection.
	ErrKeyNotFound = errors.New("no matching JWK found")
)

// https://datatracker.ietf.org/doc/html/rfc7517#section-4
type (
	ParameterName = string

	RSA       = ParameterName
	ECDSA     = ParameterName
	Symmetric = ParameterName
)

const (
	KeyType              ParameterName = "kty"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.1
	PublicKeyUse         ParameterName = "use"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.2
	KeyOperations        ParameterName = "key_ops"  // https://datatracker.ietf.org/doc/html/rfc7517#section-4.3
	Algorithm            ParameterName = "alg"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.4
	KeyID                ParameterName = "kid"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.5
	X509URL              ParameterName = "x5u"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.6
	X509CertificateChain ParameterName = "x5c"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.7
	X509SHA1Thumbprint   ParameterName = "x5t"      // https://datatracker.ietf.org/doc/html/rfc7517#section-4.8
	X509SHA256Thumbprint ParameterName = "x5t#S256" // https://datatracker.ietf.org/doc/html/rfc7517#section-4.9

	// K is the symmetric key value within a JWK.
	// https://datatracker.ietf.org/doc/html/rfc7517#appendix-A.3
	K Symmetric = "k"

	// Curve is the curve value within an ECDSA JWK, such as "P-256".
	// https://datatracker.ietf.org/doc/html/rfc7517#appendix-A.3
	Curve ECDSA = "crv"
	X     ECDSA = "x" // X is the x-coordinate for the elliptic curve point.
	Y     ECDSA = "y" // Y is the y-coordinate for the elliptic curve point.

	N RSA = "n" // N is the RSA public modulus value.
	E RSA = "e" // E is the RSA public exponent value.
	D RSA = "d" // D is the RSA private exponent value.
)

// Key operations, as used by the "key_ops" parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-4.3
const (
	OpSign    = "sign"
	OpVerify  = "verify"
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// privateParameters are the members holding private key material.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-6.3.2
var privateParameters = []ParameterName{D, "p", "q", "dp", "dq", "qi", "oth", K}

// Value is a JSON object containing the parameters of a key.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-4
type Value = map[ParameterName]any

// PublicValue returns a copy of v without its private key material.
func PublicValue(v Value) Value {
	public := maps.Clone(v)
	for _, name := range privateParameters {
		delete(public, name)
	}
	return public
}

// Validate checks that the required parameters are present for
// the given key type, and that the values are valid.
func Validate(v Value) error {
	kty, ok := v[KeyType].(string)
	if !ok {
		return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, KeyType)
	}

	switch kty {
	case jwa.KeyTypeEC:
		crv, ok := v[Curve].(string)
		if !ok {
			return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, Curve)
		}

		switch crv {
		case "P-256", "P-384", "P-521", "secp256k1":
			// ok
		default:
			return fmt.Errorf("%w: invalid curve %q", ErrInvalidKey, crv)
		}

		return validateEncoded(v, X, Y)
	case jwa.KeyTypeRSA:
		if err := validateEncoded(v, N, E); err != nil {
			return err
		}
		if _, ok := v[D]; ok {
			return validateEncoded(v, D)
		}
		return nil
	case jwa.KeyTypeOKP:
		if crv, _ := v[Curve].(string); crv != "Ed25519" {
			return fmt.Errorf("%w: invalid curve %q", ErrInvalidKey, v[Curve])
		}
		return validateEncoded(v, X)
	case jwa.KeyTypeOct:
		return validateEncoded(v, K)
	default:
		return fmt.Errorf("%w: unknown key type %q", ErrInvalidKey, kty)
	}
}

func validateEncoded(v Value, names ...ParameterName) error {
	for _, name := range names {
		value, ok := v[name]
		if !ok {
			return fmt.Errorf("%w: missing required parameter %q", ErrInvalidKey, name)
		}

		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: invalid type %T for %q", ErrInvalidKey, value, name)
		}

		if _, err := base64.Decode(s); err != nil {
			return fmt.Errorf("%w: invalid base64 encoding for %q: %w", ErrInvalidKey, name, err)
		}
	}
	return nil
}

// Package thumbprint computes JWK Thumbprints (RFC 7638).
package thumbprint

import (
	"crypto"
	_ "crypto/sha256"
	"errors"
	"fmt"

	"github.com/cufyorg/jose/internal/jsonx"
	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
)

var (
	ErrInvalidKey = errors.New("thumbprint: invalid key")
)

// required lists the members hashed for each key type.
//
// https://datatracker.ietf.org/doc/html/rfc7638#section-3.2
var required = map[string][]jwk.ParameterName{
	jwa.KeyTypeRSA: {jwk.E, jwk.KeyType, jwk.N},
	jwa.KeyTypeEC:  {jwk.Curve, jwk.KeyType, jwk.X, jwk.Y},
	jwa.KeyTypeOKP: {jwk.Curve, jwk.KeyType, jwk.X},
	jwa.KeyTypeOct: {jwk.K, jwk.KeyType},
}

// Generate returns the JWK Thumbprint for the given JWK following
// the steps defined in RFC 7638.
func Generate(value jwk.Value, h crypto.Hash) ([]byte, error) {
	kty, ok := value[jwk.KeyType].(string)
	if !ok {
		return nil, ErrInvalidKey
	}

	names, ok := required[kty]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported key type %q", ErrInvalidKey, kty)
	}

	// 1. Construct a JSON object [RFC7159] containing only the required
	// members of a JWK representing the key and with no whitespace or
	// line breaks before or after any syntactic elements and with the
	// required members ordered lexicographically by the Unicode
	// [UNICODE] code points of the member names.
	subset := make(map[string]string, len(names))
	for _, name := range names {
		member, ok := value[name].(string)
		if !ok {
			return nil, fmt.Errorf("%w: missing required member %q", ErrInvalidKey, name)
		}
		subset[name] = member
	}

	// Go maps are marshaled with their keys sorted.
	b, err := jsonx.Marshal(subset)
	if err != nil {
		return nil, err
	}

	// 2. Hash the octets of the UTF-8 representation of this JSON object
	// with a cryptographic hash function H.
	//
	// If none is specified, SHA-256 is used.
	if h == 0 {
		h = crypto.SHA256
	}

	if !h.Available() {
		return nil, fmt.Errorf("thumbprint: hash %v is not available", h)
	}

	hash := h.New()
	hash.Write(b)

	return hash.Sum(nil), nil
}

// GenerateString returns the JWK Thumbprint for the given JWK following
// the steps defined in RFC 7638 as a base64url encoded string.
func GenerateString(value jwk.Value, h crypto.Hash) (string, error) {
	thumbprint, err := Generate(value, h)
	if err != nil {
		return "", err
	}

	return base64.Encode(thumbprint), nil
}

// Key returns the base64url encoded SHA-256 JWK Thumbprint of the given key.
func Key(key jwk.Key) (string, error) {
	return GenerateString(key.Parameters(), crypto.SHA256)
}

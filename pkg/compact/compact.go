// Package compact implements the JWS and JWE Compact Serializations.
//
// A compact token is either a JWS (three base64url segments) or a JWE
// (five base64url segments), separated by periods:
//
//	JWS: BASE64URL(header) . BASE64URL(payload) . BASE64URL(signature)
//	JWE: BASE64URL(header) . BASE64URL(encrypted key) . BASE64URL(iv) . BASE64URL(ciphertext) . BASE64URL(tag)
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-7.1
// https://datatracker.ietf.org/doc/html/rfc7516#section-7.1
package compact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedToken is returned when a string does not have the number of
// segments of a compact JWS or JWE.
var ErrMalformedToken = errors.New("malformed compact token")

const (
	jwsSegments = 3
	jweSegments = 5
)

// Shape is the kind of compact token a string looks like.
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeJWS
	ShapeJWE
)

func (s Shape) String() string {
	switch s {
	case ShapeJWS:
		return "JWS"
	case ShapeJWE:
		return "JWE"
	default:
		return "invalid"
	}
}

// Token is a compact serialized token. It is either a JWS or a JWE; no
// other implementation exists.
type Token interface {
	// String returns the compact serialization of the token.
	String() string

	// Protected returns the base64url encoded protected header segment.
	Protected() string

	// Shape returns ShapeJWS or ShapeJWE.
	Shape() Shape

	token()
}

// QuickCheck reports the shape of s by counting its periods, without
// splitting it.
func QuickCheck(s string) Shape {
	switch strings.Count(s, ".") {
	case jwsSegments - 1:
		return ShapeJWS
	case jweSegments - 1:
		return ShapeJWE
	default:
		return ShapeInvalid
	}
}

// IsJWS reports whether s has the shape of a compact JWS.
func IsJWS(s string) bool { return QuickCheck(s) == ShapeJWS }

// IsJWE reports whether s has the shape of a compact JWE.
func IsJWE(s string) bool { return QuickCheck(s) == ShapeJWE }

// IsCompact reports whether s has the shape of a compact JWS or JWE.
func IsCompact(s string) bool { return QuickCheck(s) != ShapeInvalid }

// Decode splits s into its segments and returns the JWS or JWE it holds.
func Decode(s string) (Token, error) {
	parts := strings.Split(s, ".")

	switch len(parts) {
	case jwsSegments:
		return NewJWS(parts[0], parts[1], parts[2]), nil
	case jweSegments:
		return NewJWE(parts[0], parts[1], parts[2], parts[3], parts[4]), nil
	default:
		return nil, fmt.Errorf("%w: found %d segments, expected %d or %d", ErrMalformedToken, len(parts), jwsSegments, jweSegments)
	}
}

// DecodeGeneric is like Decode, but classifies s by its number of periods
// before splitting it.
func DecodeGeneric(s string) (Token, error) {
	switch QuickCheck(s) {
	case ShapeJWS:
		return DecodeJWS(s)
	case ShapeJWE:
		return DecodeJWE(s)
	default:
		return nil, fmt.Errorf("%w: found %d periods, expected %d or %d", ErrMalformedToken, strings.Count(s, "."), jwsSegments-1, jweSegments-1)
	}
}

// DecodeJWS decodes s as a compact JWS.
func DecodeJWS(s string) (JWS, error) {
	parts := strings.Split(s, ".")
	if len(parts) != jwsSegments {
		return JWS{}, fmt.Errorf("%w: found %d segments, expected %d for a JWS", ErrMalformedToken, len(parts), jwsSegments)
	}
	return NewJWS(parts[0], parts[1], parts[2]), nil
}

// DecodeJWE decodes s as a compact JWE.
func DecodeJWE(s string) (JWE, error) {
	parts := strings.Split(s, ".")
	if len(parts) != jweSegments {
		return JWE{}, fmt.Errorf("%w: found %d segments, expected %d for a JWE", ErrMalformedToken, len(parts), jweSegments)
	}
	return NewJWE(parts[0], parts[1], parts[2], parts[3], parts[4]), nil
}

// Encode returns the compact serialization of the given token.
func Encode(t Token) string {
	return t.String()
}

package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Decode returns the base64url decoded bytes from the given input.
// This function implements base64url decoding as defined in RFC 4648 Section 5,
// which is used in the JWS and JWE compact serializations (RFC 7515, RFC 7516).
//
// Trailing padding is optional: inputs with or without "=" characters are
// accepted. The empty string decodes to an empty (nil) byte slice, which is
// how an unsigned JWS represents its signature.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	result, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(input, "="))
	if err != nil {
		return nil, fmt.Errorf("base64: invalid base64url input: %w", err)
	}
	return result, nil
}

// DecodeString is like Decode, but returns the decoded bytes as a string.
func DecodeString(input string) (string, error) {
	b, err := Decode(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Encode returns the base64url encoded string from the given input.
// This function implements base64url encoding as defined in RFC 4648 Section 5,
// which is used in the JWS and JWE compact serializations (RFC 7515, RFC 7516).
//
// Padding characters are never emitted.
func Encode(input []byte) string {
	return base64.RawURLEncoding.EncodeToString(input)
}

// EncodeString is like Encode, but takes its input as a string.
func EncodeString(input string) string {
	return Encode([]byte(input))
}

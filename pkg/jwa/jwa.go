package jwa

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when no usable algorithm can be
	// determined, or the one requested is not implemented.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInsecureAlgorithm is returned when a constrained operation meets
	// an algorithm, such as "none", that is not allowed.
	ErrInsecureAlgorithm = errors.New("insecure algorithm")
)

// https://datatracker.ietf.org/doc/html/rfc7518#section-3.1
type Algorithm = string

// HMAC with SHA-2 Functions
//
// These algorithms are used to construct a MAC using a shared secret
// and the Hash-based Message Authentication Code (HMAC) construction
// [RFC2104] employing SHA-2 [SHS] hash functions.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.2
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// RSASSA-PKCS1-v1_5
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using PKCS #1 v1.5 methods.
//
// # RSA Key Size
//
// A key of size 2048 bits or larger MUST be used with these algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.3
const (
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
)

// ECDSA
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using ECDSA algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.4
const (
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"
)

// RSASSA-PSS
//
// These algorithms are used to digitally sign a JWS and produce a
// JWS Signature using the RSASSA-PSS algorithms.
//
// # RSA Key Size
//
// A key of size 2048 bits or larger MUST be used with these algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.5
const (
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
)

// No signature or MAC performed (unprotected JWS). This algorithm is
// intended to be used to create a JWS that is not integrity protected.
//
// # Warning
//
// The use of this algorithm is considered dangerous. Verification of
// tokens using it is rejected unless constraints are explicitly disabled.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.6
const None Algorithm = "none"

// ES256K is ECDSA using secp256k1 and SHA-256 (RFC 8812), and EdDSA
// is the Edwards-curve signature algorithm (RFC 8037).
const (
	ES256K Algorithm = "ES256K"
	EdDSA  Algorithm = "EdDSA"
)

// Key Management Algorithms
//
// These algorithms are used to determine the Content Encryption Key
// of a JWE.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-4.1
const (
	RSA1_5     Algorithm = "RSA1_5"
	RSAOAEP    Algorithm = "RSA-OAEP"
	RSAOAEP256 Algorithm = "RSA-OAEP-256"

	ECDHES       Algorithm = "ECDH-ES"
	ECDHESA128KW Algorithm = "ECDH-ES+A128KW"
	ECDHESA192KW Algorithm = "ECDH-ES+A192KW"
	ECDHESA256KW Algorithm = "ECDH-ES+A256KW"
)

// Content Encryption Algorithms
//
// These algorithms are used to encrypt the plaintext of a JWE with
// the Content Encryption Key.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-5.1
const (
	A128CBCHS256 Algorithm = "A128CBC-HS256"
	A192CBCHS384 Algorithm = "A192CBC-HS384"
	A256CBCHS512 Algorithm = "A256CBC-HS512"

	A128GCM Algorithm = "A128GCM"
	A192GCM Algorithm = "A192GCM"
	A256GCM Algorithm = "A256GCM"
)

// Compression Algorithms
//
// https://datatracker.ietf.org/doc/html/rfc7516#section-4.1.3
const DEF Algorithm = "DEF"

// ConstrainedSignatureAlgorithms returns the signature algorithms that are
// allowed when constraints are enforced.
func ConstrainedSignatureAlgorithms() AllowedAlgorithms {
	return NewAllowedAlgorithms(SignatureAlgorithms()...)
}

// SignatureAlgorithms returns every JWS algorithm except "none".
func SignatureAlgorithms() []Algorithm {
	return []Algorithm{
		RS256, RS384, RS512,
		PS256, PS384, PS512,
		ES256, ES384, ES512, ES256K,
		HS256, HS384, HS512,
		EdDSA,
	}
}

// KeyManagementAlgorithms returns every supported JWE key management algorithm.
func KeyManagementAlgorithms() []Algorithm {
	return []Algorithm{
		RSA1_5, RSAOAEP, RSAOAEP256,
		ECDHES, ECDHESA128KW, ECDHESA192KW, ECDHESA256KW,
	}
}

// ContentEncryptionAlgorithms returns every supported JWE content encryption algorithm.
func ContentEncryptionAlgorithms() []Algorithm {
	return []Algorithm{
		A128CBCHS256, A192CBCHS384, A256CBCHS512,
		A128GCM, A192GCM, A256GCM,
	}
}

package jwa

// Key types, as used by the "kty" JWK parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-6.1
const (
	KeyTypeRSA = "RSA"
	KeyTypeEC  = "EC"
	KeyTypeOct = "oct"
	KeyTypeOKP = "OKP"
)

// Public key uses, as used by the "use" JWK parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7517#section-4.2
const (
	UseSignature  = "sig"
	UseEncryption = "enc"
)

// DefaultSignAlgorithm returns the signature algorithm to use with a key
// of the given type, use and declared algorithm. An empty result means
// the key cannot be used for signing without an explicit algorithm.
func DefaultSignAlgorithm(kty, use string, alg Algorithm) Algorithm {
	if use != "" && use != UseSignature {
		return ""
	}

	if alg != "" {
		return alg
	}

	switch kty {
	case KeyTypeRSA:
		return RS384
	case KeyTypeEC:
		return ES384
	default:
		return ""
	}
}

// DefaultEncryptAlgorithm returns the key management algorithm to use with
// a key of the given type, use and declared algorithm. An empty result
// means the key cannot be used for encryption without an explicit algorithm.
func DefaultEncryptAlgorithm(kty, use string, alg Algorithm) Algorithm {
	if use != "" && use != UseEncryption {
		return ""
	}

	if alg != "" {
		return alg
	}

	switch kty {
	case KeyTypeRSA:
		return RSAOAEP256
	case KeyTypeEC:
		return ECDHESA256KW
	default:
		return ""
	}
}

// DefaultContentEncryption returns the content encryption algorithm.
// A128CBC-HS256 is the single default regardless of the key.
func DefaultContentEncryption(kty, use string, alg Algorithm) Algorithm {
	return A128CBCHS256
}

// IsCompatible reports whether a key of the given type can be used with
// the given algorithm.
func IsCompatible(kty string, alg Algorithm) bool {
	switch kty {
	case KeyTypeRSA:
		switch alg {
		case RS256, RS384, RS512,
			PS256, PS384, PS512,
			RSA1_5, RSAOAEP, RSAOAEP256:
			return true
		}
	case KeyTypeEC:
		switch alg {
		case ES256, ES384, ES512, ES256K, EdDSA,
			ECDHES, ECDHESA128KW, ECDHESA192KW, ECDHESA256KW:
			return true
		}
	}

	return false
}

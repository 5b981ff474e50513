// Package jws implements the JSON Web Signature (RFC 7515) algorithms over
// a JWS Signing Input: RSASSA-PKCS1-v1_5, RSASSA-PSS, ECDSA (including
// secp256k1), EdDSA and HMAC.
package jws

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cufyorg/jose/pkg/jwa"
)

var (
	ErrUnsupportedAlgorithm = fmt.Errorf("signature: %w", jwa.ErrUnsupportedAlgorithm)
	ErrInvalidKey           = errors.New("invalid key for signature algorithm")
	ErrInvalidSignature     = errors.New("invalid signature")
)

// MinimumRSAKeySize is the smallest RSA modulus, in bits, that may be used
// with the RS* and PS* algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.3
const MinimumRSAKeySize = 2048

// algorithm to corresponding hash function
var algHash = map[jwa.Algorithm]crypto.Hash{
	jwa.HS256:  crypto.SHA256,
	jwa.HS384:  crypto.SHA384,
	jwa.HS512:  crypto.SHA512,
	jwa.RS256:  crypto.SHA256,
	jwa.RS384:  crypto.SHA384,
	jwa.RS512:  crypto.SHA512,
	jwa.ES256:  crypto.SHA256,
	jwa.ES384:  crypto.SHA384,
	jwa.ES512:  crypto.SHA512,
	jwa.ES256K: crypto.SHA256,
	jwa.PS256:  crypto.SHA256,
	jwa.PS384:  crypto.SHA384,
	jwa.PS512:  crypto.SHA512,
	jwa.EdDSA:  crypto.Hash(0), // no hashing for EdDSA
}

// algCurve is the curve each ECDSA algorithm is bound to.
var algCurve = map[jwa.Algorithm]elliptic.Curve{
	jwa.ES256:  elliptic.P256(),
	jwa.ES384:  elliptic.P384(),
	jwa.ES512:  elliptic.P521(),
	jwa.ES256K: btcec.S256(),
}

// Config holds the requirements applied to signing keys.
type Config struct {
	// MinimumRSAKeySize is the smallest accepted RSA modulus in bits.
	// Zero disables the check.
	MinimumRSAKeySize int
}

// Option is a functional option type used to configure signing and
// verification.
type Option func(*Config)

// WithMinimumRSAKeySize sets the smallest accepted RSA modulus in bits.
func WithMinimumRSAKeySize(bits int) Option {
	return func(c *Config) {
		c.MinimumRSAKeySize = bits
	}
}

func newConfig(opts []Option) *Config {
	config := &Config{MinimumRSAKeySize: MinimumRSAKeySize}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Sign returns the signature of the signing input using the given key.
//
// Algorithm(s) to Supported Key Type(s):
//   - HS256, HS384, HS512: []byte
//   - RS256, RS384, RS512, PS256, PS384, PS512: *rsa.PrivateKey
//   - ES256, ES384, ES512, ES256K: *ecdsa.PrivateKey on the matching curve
//   - EdDSA: ed25519.PrivateKey
func Sign(alg jwa.Algorithm, signingInput []byte, key any, opts ...Option) ([]byte, error) {
	config := newConfig(opts)

	hash, ok := algHash[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	switch alg {
	case jwa.HS256, jwa.HS384, jwa.HS512:
		secretKey, err := hmacKey(key)
		if err != nil {
			return nil, err
		}
		return hmacSum(hash, secretKey, signingInput), nil
	case jwa.RS256, jwa.RS384, jwa.RS512, jwa.PS256, jwa.PS384, jwa.PS512:
		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok || privateKey == nil {
			return nil, fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		if err := checkRSAKeySize(&privateKey.PublicKey, config); err != nil {
			return nil, err
		}

		digest := hashSum(hash, signingInput)
		if alg == jwa.PS256 || alg == jwa.PS384 || alg == jwa.PS512 {
			return rsa.SignPSS(rand.Reader, privateKey, hash, digest, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash})
		}
		return rsa.SignPKCS1v15(rand.Reader, privateKey, hash, digest)
	case jwa.ES256, jwa.ES384, jwa.ES512, jwa.ES256K:
		privateKey, ok := key.(*ecdsa.PrivateKey)
		if !ok || privateKey == nil {
			return nil, fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		return ecdsaSign(alg, hash, privateKey, signingInput)
	case jwa.EdDSA:
		privateKey, ok := key.(ed25519.PrivateKey)
		if !ok || len(privateKey) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		return ed25519.Sign(privateKey, signingInput), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

// Verify verifies the signature of the signing input using the given key.
// It returns ErrInvalidSignature when the signature does not match.
//
// Algorithm(s) to Supported Key Type(s):
//   - HS256, HS384, HS512: []byte
//   - RS256, RS384, RS512, PS256, PS384, PS512: *rsa.PublicKey
//   - ES256, ES384, ES512, ES256K: *ecdsa.PublicKey on the matching curve
//   - EdDSA: ed25519.PublicKey
func Verify(alg jwa.Algorithm, signingInput, signature []byte, key any, opts ...Option) error {
	config := newConfig(opts)

	hash, ok := algHash[alg]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	switch alg {
	case jwa.HS256, jwa.HS384, jwa.HS512:
		secretKey, err := hmacKey(key)
		if err != nil {
			return err
		}
		if !hmac.Equal(signature, hmacSum(hash, secretKey, signingInput)) {
			return fmt.Errorf("%w: HMAC mismatch", ErrInvalidSignature)
		}
		return nil
	case jwa.RS256, jwa.RS384, jwa.RS512, jwa.PS256, jwa.PS384, jwa.PS512:
		publicKey, ok := key.(*rsa.PublicKey)
		if !ok || publicKey == nil {
			return fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		if err := checkRSAKeySize(publicKey, config); err != nil {
			return err
		}

		digest := hashSum(hash, signingInput)

		var err error
		if alg == jwa.PS256 || alg == jwa.PS384 || alg == jwa.PS512 {
			err = rsa.VerifyPSS(publicKey, hash, digest, signature, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthAuto})
		} else {
			err = rsa.VerifyPKCS1v15(publicKey, hash, digest, signature)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		}
		return nil
	case jwa.ES256, jwa.ES384, jwa.ES512, jwa.ES256K:
		publicKey, ok := key.(*ecdsa.PublicKey)
		if !ok || publicKey == nil {
			return fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		return ecdsaVerify(alg, hash, publicKey, signingInput, signature)
	case jwa.EdDSA:
		publicKey, ok := key.(ed25519.PublicKey)
		if !ok || len(publicKey) != ed25519.PublicKeySize {
			return fmt.Errorf("%w: %T cannot be used with %q", ErrInvalidKey, key, alg)
		}
		if !ed25519.Verify(publicKey, signingInput, signature) {
			return fmt.Errorf("%w: EdDSA mismatch", ErrInvalidSignature)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
}

func checkRSAKeySize(publicKey *rsa.PublicKey, config *Config) error {
	if publicKey.N == nil {
		return fmt.Errorf("%w: RSA key has no modulus", ErrInvalidKey)
	}
	if config.MinimumRSAKeySize > 0 && publicKey.N.BitLen() < config.MinimumRSAKeySize {
		return fmt.Errorf("%w: RSA key size %d bits is smaller than %d bits", ErrInvalidKey, publicKey.N.BitLen(), config.MinimumRSAKeySize)
	}
	return nil
}

func hmacKey(key any) ([]byte, error) {
	secretKey, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: secret key is %T, not a byte slice", ErrInvalidKey, key)
	}

	// Ensure the secret key is not empty.
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("%w: no secret key provided", ErrInvalidKey)
	}

	return secretKey, nil
}

func hmacSum(hash crypto.Hash, secretKey, data []byte) []byte {
	h := hmac.New(hash.New, secretKey)
	h.Write(data)
	return h.Sum(nil)
}

func hashSum(hash crypto.Hash, data []byte) []byte {
	h := hash.New()
	h.Write(data)
	return h.Sum(nil)
}

// ecdsaKeyBytes returns the size of R and S in the signature encoding,
// which is the curve size rounded up to whole bytes.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.4
func ecdsaKeyBytes(curve elliptic.Curve) int {
	return (curve.Params().BitSize + 7) / 8
}

func ecdsaSign(alg jwa.Algorithm, hash crypto.Hash, privateKey *ecdsa.PrivateKey, signingInput []byte) ([]byte, error) {
	curve := algCurve[alg]
	if privateKey.Curve == nil || privateKey.Curve.Params().Name != curve.Params().Name {
		return nil, fmt.Errorf("%w: ECDSA key curve does not match %q", ErrInvalidKey, alg)
	}

	r, s, err := ecdsa.Sign(rand.Reader, privateKey, hashSum(hash, signingInput))
	if err != nil {
		return nil, fmt.Errorf("failed to sign with ECDSA private key: %w", err)
	}

	keyBytes := ecdsaKeyBytes(curve)

	out := make([]byte, 2*keyBytes)
	r.FillBytes(out[:keyBytes])
	s.FillBytes(out[keyBytes:])

	return out, nil
}

func ecdsaVerify(alg jwa.Algorithm, hash crypto.Hash, publicKey *ecdsa.PublicKey, signingInput, signature []byte) error {
	curve := algCurve[alg]
	if publicKey.Curve == nil || publicKey.Curve.Params().Name != curve.Params().Name {
		return fmt.Errorf("%w: ECDSA key curve does not match %q", ErrInvalidKey, alg)
	}

	keyBytes := ecdsaKeyBytes(curve)
	if len(signature) != 2*keyBytes {
		return fmt.Errorf("%w: invalid signature length %d for key size", ErrInvalidSignature, len(signature))
	}

	r := new(big.Int).SetBytes(signature[:keyBytes])
	s := new(big.Int).SetBytes(signature[keyBytes:])

	if !ecdsa.Verify(publicKey, hashSum(hash, signingInput), r, s) {
		return fmt.Errorf("%w: ECDSA mismatch", ErrInvalidSignature)
	}

	return nil
}

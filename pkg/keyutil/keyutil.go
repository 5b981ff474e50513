// Package keyutil generates and parses the raw cryptographic keys that
// back JSON Web Keys.
package keyutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Curve names as used by the "crv" JWK parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-6.2.1.1
// https://datatracker.ietf.org/doc/html/rfc8812#section-3.1
const (
	CurveP256      = "P-256"
	CurveP384      = "P-384"
	CurveP521      = "P-521"
	CurveSecp256k1 = "secp256k1"
)

// DefaultRSAKeySize is the RSA modulus size, in bits, of generated keys.
const DefaultRSAKeySize = 2048

// SymmetricKeysEqual checks if the given keys are the same.
func SymmetricKeysEqual(key1 []byte, key2 []byte) bool {
	return subtle.ConstantTimeCompare(key1, key2) == 1
}

// NewSymmetricKey generates a new symmetric key of the given size.
func NewSymmetricKey(size int) ([]byte, error) {
	key := make([]byte, size)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new symmetic key: %w", err)
	}

	return key, nil
}

// Curve returns the elliptic curve with the given JWK name.
func Curve(name string) (elliptic.Curve, error) {
	switch name {
	case CurveP256:
		return elliptic.P256(), nil
	case CurveP384:
		return elliptic.P384(), nil
	case CurveP521:
		return elliptic.P521(), nil
	case CurveSecp256k1:
		return btcec.S256(), nil
	default:
		return nil, fmt.Errorf("unsupported curve %q", name)
	}
}

// CurveName returns the JWK name of the given elliptic curve.
func CurveName(curve elliptic.Curve) (string, error) {
	if curve == nil {
		return "", fmt.Errorf("no curve")
	}

	switch curve.Params().Name {
	case elliptic.P256().Params().Name:
		return CurveP256, nil
	case elliptic.P384().Params().Name:
		return CurveP384, nil
	case elliptic.P521().Params().Name:
		return CurveP521, nil
	case btcec.S256().Params().Name:
		return CurveSecp256k1, nil
	default:
		return "", fmt.Errorf("unsupported curve %q", curve.Params().Name)
	}
}

// NewRSAKeyPair returns a new RSA key pair of the given size in bits, or
// DefaultRSAKeySize when bits is zero.
func NewRSAKeyPair(bits int) (*rsa.PublicKey, *rsa.PrivateKey, error) {
	if bits == 0 {
		bits = DefaultRSAKeySize
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate new RSA key pair: %w", err)
	}

	return &privateKey.PublicKey, privateKey, nil
}

// NewECDSAKeyPair returns a new ECDSA key pair on the named curve.
func NewECDSAKeyPair(crv string) (*ecdsa.PublicKey, *ecdsa.PrivateKey, error) {
	curve, err := Curve(crv)
	if err != nil {
		return nil, nil, err
	}

	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate new ECDSA key pair: %w", err)
	}

	return &privateKey.PublicKey, privateKey, nil
}

// NewEdDSAKeyPair returns a new EdDSA key pair, or an error if one occurs.
func NewEdDSAKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate new EdDSA key pair: %w", err)
	}

	return publicKey, privateKey, nil
}

func decodePEM(r io.Reader) (*pem.Block, error) {
	keyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read key from reader: %w", err)
	}

	block, _ := pem.Decode(keyBytes)
	if block == nil {
		return nil, fmt.Errorf("failed to decode key PEM block")
	}

	return block, nil
}

// ParsePrivateKey parses the PEM encoded private key from the given reader.
// PKCS #1, PKCS #8 and SEC 1 encodings are accepted.
func ParsePrivateKey(r io.Reader) (crypto.PrivateKey, error) {
	block, err := decodePEM(r)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	return nil, fmt.Errorf("failed to parse private key, unknown type %q", block.Type)
}

// ParsePublicKey parses the PEM encoded public key from the given reader.
// PKIX, PKCS #1 and X.509 certificate encodings are accepted.
func ParsePublicKey(r io.Reader) (crypto.PublicKey, error) {
	block, err := decodePEM(r)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		return key, nil
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	if cert, err := x509.ParseCertificate(block.Bytes); err == nil {
		return cert.PublicKey, nil
	}

	return nil, fmt.Errorf("failed to parse public key, unknown type %q", block.Type)
}

// Package provider is the default cryptographic backend of the engine. It
// turns JSON Web Keys into Go crypto keys and runs the JWS and JWE
// primitives over them.
package provider

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwe"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jws"
)

// ErrNoPrivateKey is returned when an operation needs private key material
// and the key only has public parameters.
var ErrNoPrivateKey = errors.New("key has no private material")

// Default signs, verifies, encrypts and decrypts with the keys described
// by *Key, rebuilding any other jwk.Key from its parameters.
type Default struct{}

// Sign returns the signature of the signing input.
func (Default) Sign(ctx context.Context, signingInput []byte, key jwk.Key, alg jwa.Algorithm, c jwa.Constraints) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !c.SignatureAllowed(alg) {
		return nil, fmt.Errorf("%w: signature algorithm %q", jwa.ErrInsecureAlgorithm, alg)
	}

	k, err := Materialize(key)
	if err != nil {
		return nil, err
	}

	private, ok := k.Private()
	if !ok {
		return nil, fmt.Errorf("%w: cannot sign with key %q", ErrNoPrivateKey, k.Kid())
	}

	return jws.Sign(alg, signingInput, private, jws.WithMinimumRSAKeySize(c.RSAKeySize()))
}

// Verify reports whether signature is a valid signature of the signing
// input. A mismatching signature is not an error.
func (Default) Verify(ctx context.Context, signingInput, signature []byte, key jwk.Key, alg jwa.Algorithm, c jwa.Constraints) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !c.SignatureAllowed(alg) {
		return false, fmt.Errorf("%w: signature algorithm %q", jwa.ErrInsecureAlgorithm, alg)
	}

	k, err := Materialize(key)
	if err != nil {
		return false, err
	}

	err = jws.Verify(alg, signingInput, signature, k.Public(), jws.WithMinimumRSAKeySize(c.RSAKeySize()))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, jws.ErrInvalidSignature):
		return false, nil
	default:
		return false, err
	}
}

// Encrypt encrypts payload for the key and returns the compact JWE. The
// parameters of h are carried in the protected header.
func (Default) Encrypt(ctx context.Context, h header.Parameters, payload []byte, key jwk.Key, alg, enc jwa.Algorithm, c jwa.Constraints) (compact.JWE, error) {
	if err := ctx.Err(); err != nil {
		return compact.JWE{}, err
	}

	k, err := Materialize(key)
	if err != nil {
		return compact.JWE{}, err
	}

	if err := checkRSAKeySize(k.Public(), c); err != nil {
		return compact.JWE{}, err
	}

	token, err := jwe.Encrypt(payload, h, k.Public(), alg, enc, jwe.WithAllowedKeyAlgorithms(c.KeyManagementSet()))
	if err != nil {
		return compact.JWE{}, err
	}

	return compact.DecodeJWE(token)
}

// Decrypt decrypts the token with the key's private material and returns
// its protected header and plaintext.
func (Default) Decrypt(ctx context.Context, token compact.JWE, key jwk.Key, alg, enc jwa.Algorithm, c jwa.Constraints) (header.Parameters, []byte, error) {
	if err := ctx.Err(); err != nil {
		return header.Parameters{}, nil, err
	}

	k, err := Materialize(key)
	if err != nil {
		return header.Parameters{}, nil, err
	}

	if err := checkRSAKeySize(k.Public(), c); err != nil {
		return header.Parameters{}, nil, err
	}

	private, ok := k.Private()
	if !ok {
		return header.Parameters{}, nil, fmt.Errorf("%w: cannot decrypt with key %q", ErrNoPrivateKey, k.Kid())
	}

	return jwe.Decrypt(token.String(), private, alg, enc, jwe.WithAllowedKeyAlgorithms(c.KeyManagementSet()))
}

func checkRSAKeySize(public any, c jwa.Constraints) error {
	publicKey, ok := public.(*rsa.PublicKey)
	if !ok || c.RSAKeySize() == 0 {
		return nil
	}
	if publicKey.N.BitLen() < c.RSAKeySize() {
		return fmt.Errorf("%w: RSA key size %d bits is smaller than %d bits", jwk.ErrInvalidKey, publicKey.N.BitLen(), c.RSAKeySize())
	}
	return nil
}

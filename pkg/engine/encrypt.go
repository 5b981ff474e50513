package engine

import (
	"context"
	"time"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwt"
	"go.uber.org/zap"
)

// Encrypt encrypts the token payload for a key of the set and returns the
// compact JWE.
//
// The key is the most specific encryption key matching the "kid" and
// "alg" header parameters of the token. Missing "alg" and "enc"
// parameters are inferred from the key. The remaining header parameters
// of the token are carried in the protected header.
func (e *Engine) Encrypt(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (compact.JWE, error) {
	start := time.Now()
	jwe, err := e.encrypt(ctx, token, keys, e.resolve(opts))
	e.observe(OpEncrypt, start, err)
	return jwe, err
}

func (e *Engine) encrypt(ctx context.Context, token *jwt.Token, keys jwk.Set, c Constraints) (compact.JWE, error) {
	if token == nil {
		return compact.JWE{}, fail(OpEncrypt, ErrInvalidPayload, "no token")
	}

	alg := token.Alg()

	key, ok := keys.FindEncrypt(token.Kid(), alg)
	if !ok {
		return compact.JWE{}, fail(OpEncrypt, ErrKeyNotFound, "no encryption key for kid %q and alg %q", token.Kid(), alg)
	}

	if alg == "" {
		alg = jwa.DefaultEncryptAlgorithm(key.Kty(), key.Use(), key.Alg())
	}
	if alg == "" {
		return compact.JWE{}, fail(OpEncrypt, ErrUnsupportedAlgorithm, "no key management algorithm for %q key %q", key.Kty(), key.Kid())
	}

	enc := token.Enc()
	if enc == "" {
		enc = jwa.DefaultContentEncryption(key.Kty(), key.Use(), key.Alg())
	}

	e.logger.Debug("selected encryption key",
		zap.String("op", OpEncrypt),
		zap.String("kid", key.Kid()),
		zap.String("alg", alg),
		zap.String("enc", enc),
	)

	h := token.Header()
	if kid := key.Kid(); kid != "" {
		h = h.With(header.Pair{Name: header.KeyID, Value: kid})
	}
	h = h.With(
		header.Pair{Name: header.Algorithm, Value: alg},
		header.Pair{Name: header.Encryption, Value: enc},
	)

	jwe, err := e.provider.Encrypt(ctx, h, []byte(token.Payload()), key, alg, enc, c)
	if err != nil {
		return compact.JWE{}, wrap(OpEncrypt, ErrProvider, err)
	}

	return jwe, nil
}

// Decrypt decrypts the JWE with a key of the set and returns the token it
// carries, with the protected header of the JWE.
//
// The key is selected the same way Encrypt selects it, among the keys
// meant for encryption.
func (e *Engine) Decrypt(ctx context.Context, token compact.JWE, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	start := time.Now()
	t, err := e.decrypt(ctx, token, keys, e.resolve(opts))
	e.observe(OpDecrypt, start, err)
	return t, err
}

func (e *Engine) decrypt(ctx context.Context, token compact.JWE, keys jwk.Set, c Constraints) (*jwt.Token, error) {
	h, ok := token.DecodedHeader()
	if !ok {
		return nil, fail(OpDecrypt, ErrMalformedToken, "header is not a base64url encoded JSON object")
	}

	alg := h.Lookup(header.Algorithm)
	enc := h.Lookup(header.Encryption)
	kid := h.Lookup(header.KeyID)

	if alg == "" || enc == "" {
		return nil, fail(OpDecrypt, ErrUnsupportedAlgorithm, "missing %q or %q header parameter", header.Algorithm, header.Encryption)
	}

	key, ok := keys.FindEncrypt(kid, alg)
	if !ok {
		return nil, fail(OpDecrypt, ErrKeyNotFound, "no decryption key for kid %q and alg %q", kid, alg)
	}

	e.logger.Debug("selected decryption key",
		zap.String("op", OpDecrypt),
		zap.String("kid", key.Kid()),
		zap.String("alg", alg),
		zap.String("enc", enc),
	)

	decoded, payload, err := e.provider.Decrypt(ctx, token, key, alg, enc, c)
	if err != nil {
		return nil, wrap(OpDecrypt, ErrDecryptionFailure, err)
	}

	return jwt.New(string(payload), decoded), nil
}

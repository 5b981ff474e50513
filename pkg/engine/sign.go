package engine

import (
	"context"
	"time"

	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwt"
	"go.uber.org/zap"
)

// Sign signs the token with a key of the set and returns the compact JWS.
//
// The key is the most specific signing key matching the "kid" and "alg"
// header parameters of the token. Without an "alg" parameter the algorithm
// is inferred from the key. The resulting header carries the "kid" of the
// key, when it has one, and the effective "alg".
//
// A token with "alg" set to "none" is serialized unsigned without looking
// up a key, whether or not constraints are enforced.
func (e *Engine) Sign(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (compact.JWS, error) {
	start := time.Now()
	jws, err := e.sign(ctx, token, keys, e.resolve(opts))
	e.observe(OpSign, start, err)
	return jws, err
}

func (e *Engine) sign(ctx context.Context, token *jwt.Token, keys jwk.Set, c Constraints) (compact.JWS, error) {
	if token == nil {
		return compact.JWS{}, fail(OpSign, ErrInvalidPayload, "no token")
	}

	payload := base64.EncodeString(token.Payload())

	alg := token.Alg()
	if alg == jwa.None {
		protected, err := token.Header().Base64URLString()
		if err != nil {
			return compact.JWS{}, wrap(OpSign, ErrInvalidPayload, err)
		}
		return compact.NewJWS(protected, payload, ""), nil
	}

	key, ok := keys.FindSign(token.Kid(), alg)
	if !ok {
		return compact.JWS{}, fail(OpSign, ErrKeyNotFound, "no signing key for kid %q and alg %q", token.Kid(), alg)
	}

	effective := alg
	if effective == "" {
		effective = jwa.DefaultSignAlgorithm(key.Kty(), key.Use(), key.Alg())
	}
	if effective == "" {
		return compact.JWS{}, fail(OpSign, ErrUnsupportedAlgorithm, "no signature algorithm for %q key %q", key.Kty(), key.Kid())
	}

	e.logger.Debug("selected signing key",
		zap.String("op", OpSign),
		zap.String("kid", key.Kid()),
		zap.String("alg", effective),
	)

	h := token.Header()
	if kid := key.Kid(); kid != "" {
		h = h.With(header.Pair{Name: header.KeyID, Value: kid})
	}
	h = h.With(header.Pair{Name: header.Algorithm, Value: effective})

	protected, err := h.Base64URLString()
	if err != nil {
		return compact.JWS{}, wrap(OpSign, ErrInvalidPayload, err)
	}

	signingInput := protected + "." + payload

	signature, err := e.provider.Sign(ctx, []byte(signingInput), key, effective, c)
	if err != nil {
		return compact.JWS{}, wrap(OpSign, ErrProvider, err)
	}

	return compact.NewJWS(protected, payload, base64.Encode(signature)), nil
}

// Verify reports whether the signature of the JWS is valid for a key of
// the set. A mismatching signature yields false, not an error.
//
// With "alg" set to "none" it fails with ErrInsecureAlgorithm when
// constraints are enforced, and reports true otherwise.
func (e *Engine) Verify(ctx context.Context, token compact.JWS, keys jwk.Set, opts ...CallOption) (bool, error) {
	start := time.Now()
	ok, err := e.verify(ctx, OpVerify, token, keys, e.resolve(opts))
	e.observe(OpVerify, start, err)
	return ok, err
}

func (e *Engine) verify(ctx context.Context, op string, token compact.JWS, keys jwk.Set, c Constraints) (bool, error) {
	h, ok := token.DecodedHeader()
	if !ok {
		return false, fail(op, ErrMalformedToken, "header is not a base64url encoded JSON object")
	}

	alg := h.Lookup(header.Algorithm)
	if alg == jwa.None {
		if c.Enforced {
			return false, fail(op, ErrInsecureAlgorithm, "algorithm %q is not allowed", alg)
		}
		return true, nil
	}

	if alg == "" {
		return false, fail(op, ErrUnsupportedAlgorithm, "missing %q header parameter", header.Algorithm)
	}

	kid := h.Lookup(header.KeyID)

	key, ok := keys.FindVerify(kid, alg)
	if !ok {
		return false, fail(op, ErrKeyNotFound, "no verification key for kid %q and alg %q", kid, alg)
	}

	e.logger.Debug("selected verification key",
		zap.String("op", op),
		zap.String("kid", key.Kid()),
		zap.String("alg", alg),
	)

	signature, err := token.DecodedSignature()
	if err != nil {
		return false, wrap(op, ErrMalformedToken, err)
	}

	valid, err := e.provider.Verify(ctx, []byte(token.SigningInput()), signature, key, alg, c)
	if err != nil {
		return false, wrap(op, ErrProvider, err)
	}

	return valid, nil
}

// Verified verifies the JWS and returns the token it carries. An invalid
// signature fails with ErrInvalidSignature.
//
// With "alg" set to "none" and constraints lifted it is the same as
// Unverified.
func (e *Engine) Verified(ctx context.Context, token compact.JWS, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	start := time.Now()
	t, err := e.verified(ctx, token, keys, e.resolve(opts))
	e.observe(OpVerified, start, err)
	return t, err
}

func (e *Engine) verified(ctx context.Context, token compact.JWS, keys jwk.Set, c Constraints) (*jwt.Token, error) {
	valid, err := e.verify(ctx, OpVerified, token, keys, c)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fail(OpVerified, ErrInvalidSignature, "signature does not match")
	}
	return unverified(OpVerified, token)
}

// Unverified returns the token carried by the JWS without checking its
// signature.
func (e *Engine) Unverified(token compact.JWS) (*jwt.Token, error) {
	start := time.Now()
	t, err := unverified(OpUnverified, token)
	e.observe(OpUnverified, start, err)
	return t, err
}

func unverified(op string, token compact.JWS) (*jwt.Token, error) {
	h, ok := token.DecodedHeader()
	if !ok {
		return nil, fail(op, ErrMalformedToken, "header is not a base64url encoded JSON object")
	}

	payload, err := base64.DecodeString(token.Payload())
	if err != nil {
		return nil, wrap(op, ErrMalformedToken, err)
	}

	return jwt.New(payload, h), nil
}

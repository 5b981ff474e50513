package engine

import (
	"context"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwt"
)

// SignString is like Sign, but returns the compact serialization.
func (e *Engine) SignString(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (string, error) {
	jws, err := e.Sign(ctx, token, keys, opts...)
	if err != nil {
		return "", err
	}
	return jws.String(), nil
}

// VerifyString is like Verify, but decodes the compact serialization first.
func (e *Engine) VerifyString(ctx context.Context, token string, keys jwk.Set, opts ...CallOption) (bool, error) {
	jws, err := decodeJWS(OpVerify, token)
	if err != nil {
		return false, err
	}
	return e.Verify(ctx, jws, keys, opts...)
}

// VerifiedString is like Verified, but decodes the compact serialization
// first.
func (e *Engine) VerifiedString(ctx context.Context, token string, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	jws, err := decodeJWS(OpVerified, token)
	if err != nil {
		return nil, err
	}
	return e.Verified(ctx, jws, keys, opts...)
}

// UnverifiedString is like Unverified, but decodes the compact
// serialization first.
func (e *Engine) UnverifiedString(token string) (*jwt.Token, error) {
	jws, err := decodeJWS(OpUnverified, token)
	if err != nil {
		return nil, err
	}
	return e.Unverified(jws)
}

// EncryptString is like Encrypt, but returns the compact serialization.
func (e *Engine) EncryptString(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (string, error) {
	jwe, err := e.Encrypt(ctx, token, keys, opts...)
	if err != nil {
		return "", err
	}
	return jwe.String(), nil
}

// DecryptString is like Decrypt, but decodes the compact serialization
// first.
func (e *Engine) DecryptString(ctx context.Context, token string, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	jwe, err := compact.DecodeJWE(token)
	if err != nil {
		return nil, wrap(OpDecrypt, ErrMalformedToken, err)
	}
	return e.Decrypt(ctx, jwe, keys, opts...)
}

func decodeJWS(op, token string) (compact.JWS, error) {
	jws, err := compact.DecodeJWS(token)
	if err != nil {
		return compact.JWS{}, wrap(op, ErrMalformedToken, err)
	}
	return jws, nil
}

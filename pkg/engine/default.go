package engine

import (
	"context"
	"sync"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwt"
)

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the engine used by the package level functions. It has
// the default provider, no logging and no metrics.
func Default() *Engine {
	return defaultEngine()
}

// Must returns v, or panics if err is not nil. It wraps any operation:
//
//	jws := engine.Must(e.Sign(ctx, token, keys))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ok returns v and whether err is nil, discarding the error. It wraps any
// operation:
//
//	token, ok := engine.Ok(e.Verified(ctx, jws, keys))
func Ok[T any](v T, err error) (T, bool) {
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Sign calls Sign on the default engine.
func Sign(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (compact.JWS, error) {
	return Default().Sign(ctx, token, keys, opts...)
}

// Verify calls Verify on the default engine.
func Verify(ctx context.Context, token compact.JWS, keys jwk.Set, opts ...CallOption) (bool, error) {
	return Default().Verify(ctx, token, keys, opts...)
}

// Verified calls Verified on the default engine.
func Verified(ctx context.Context, token compact.JWS, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	return Default().Verified(ctx, token, keys, opts...)
}

// Unverified calls Unverified on the default engine.
func Unverified(token compact.JWS) (*jwt.Token, error) {
	return Default().Unverified(token)
}

// Encrypt calls Encrypt on the default engine.
func Encrypt(ctx context.Context, token *jwt.Token, keys jwk.Set, opts ...CallOption) (compact.JWE, error) {
	return Default().Encrypt(ctx, token, keys, opts...)
}

// Decrypt calls Decrypt on the default engine.
func Decrypt(ctx context.Context, token compact.JWE, keys jwk.Set, opts ...CallOption) (*jwt.Token, error) {
	return Default().Decrypt(ctx, token, keys, opts...)
}

package jwt

import (
	"github.com/cufyorg/jose/pkg/claims"
	"github.com/cufyorg/jose/pkg/header"
)

// Builder stages the header parameters and payload claims of a new token.
// Both keep their insertion order.
type Builder struct {
	Header  header.Parameters
	Payload ClaimsSet
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		Header:  header.New(),
		Payload: claims.New(),
	}
}

// Build returns a token holding copies of the staged header and claims.
func (b *Builder) Build() (*Token, error) {
	return FromClaims(b.Payload, b.Header)
}

// Build returns the token assembled by fn.
//
// # Example
//
//	token, err := jwt.Build(func(b *jwt.Builder) {
//		b.Header.Set(header.Type, jwt.Type)
//		b.Header.Set(header.Algorithm, jwa.RS256)
//		b.Payload.Set(claims.Subject, "example")
//	})
func Build(fn func(*Builder)) (*Token, error) {
	b := NewBuilder()
	fn(b)
	return b.Build()
}

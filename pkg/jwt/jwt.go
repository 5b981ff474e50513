package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cufyorg/jose/pkg/claims"
	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
)

// Type "JWT" is the media type used by JSON Web Token (JWT).
//
// https://www.rfc-editor.org/rfc/rfc7519.html#section-5.1
const Type = header.TypeJWT

// ErrInvalidPayload is returned when a token payload is required to be a
// JSON object but is not.
var ErrInvalidPayload = errors.New("invalid token payload")

// ClaimsSet is the set of claims conveyed by a token payload.
type ClaimsSet = claims.Set

// Token is a decoded JSON Web Token. It holds the JOSE header parameters,
// in order, and the payload text, which is usually (but not necessarily)
// a JSON object.
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-1
type Token struct {
	header  header.Parameters
	payload string
	claims  func() (ClaimsSet, bool)
}

// New returns a token with the given payload text and header parameters.
func New(payload string, h header.Parameters) *Token {
	return &Token{
		header:  h.Clone(),
		payload: payload,
		claims: sync.OnceValues(func() (ClaimsSet, bool) {
			c, err := claims.Parse([]byte(payload))
			if err != nil {
				return ClaimsSet{}, false
			}
			return c, true
		}),
	}
}

// FromClaims returns a token whose payload is the canonical JSON text of
// the given claims.
func FromClaims(c ClaimsSet, h header.Parameters) (*Token, error) {
	b, err := c.JSON()
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}
	return New(string(b), h), nil
}

// FromCompact returns a token whose payload is the given compact token,
// for nesting a signed or encrypted token inside another one.
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-5.2
func FromCompact(c compact.Token, h header.Parameters) *Token {
	return New(c.String(), h)
}

// Header returns a copy of the header parameters.
func (t *Token) Header() header.Parameters {
	return t.header.Clone()
}

// Payload returns the payload text.
func (t *Token) Payload() string {
	return t.payload
}

// Claims returns the decoded payload. It is false when the payload is not
// a JSON object. The payload is decoded at most once.
func (t *Token) Claims() (ClaimsSet, bool) {
	c, ok := t.claims()
	if !ok {
		return ClaimsSet{}, false
	}
	return c.Clone(), true
}

// WithHeaders returns a copy of the token with the given header parameters
// merged in. Later values win; the payload is untouched.
func (t *Token) WithHeaders(pairs ...header.Pair) *Token {
	return New(t.payload, t.header.With(pairs...))
}

// WithHeader is like WithHeaders, but merges a whole parameter set.
func (t *Token) WithHeader(h header.Parameters) *Token {
	return New(t.payload, t.header.Merged(h))
}

// Append returns a copy of the token with the header and claims staged by
// fn merged over the existing ones. The payload must be a JSON object.
func (t *Token) Append(fn func(*Builder)) (*Token, error) {
	c, ok := t.Claims()
	if !ok {
		return nil, fmt.Errorf("%w: payload is not a JSON object, cannot append claims", ErrInvalidPayload)
	}

	b := &Builder{Header: t.Header(), Payload: c}
	fn(b)
	return b.Build()
}

// Equal reports whether both tokens have the same header parameters, in the
// same order, and the same payload text.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.payload == other.payload && t.header.Equal(other.header)
}

func (t *Token) String() string {
	b, err := t.header.JSON()
	if err != nil {
		return fmt.Sprintf("<invalid-header %v>.%s", err, t.payload)
	}
	return string(b) + "." + t.payload
}

func (t *Token) Alg() string { return t.header.Lookup(header.Algorithm) }

func (t *Token) Enc() string { return t.header.Lookup(header.Encryption) }

func (t *Token) Zip() string { return t.header.Lookup(header.Zip) }

func (t *Token) Jku() string { return t.header.Lookup(header.JWKSetURL) }

func (t *Token) Kid() string { return t.header.Lookup(header.KeyID) }

func (t *Token) Typ() string { return t.header.Lookup(header.Type) }

func (t *Token) Cty() string { return t.header.Lookup(header.ContentType) }

func (t *Token) Crit() []string {
	crit, _ := t.header.StringList(header.Critical)
	return crit
}

func (t *Token) Issuer() (string, bool) {
	c, _ := t.claims()
	return c.Issuer()
}

func (t *Token) Subject() (string, bool) {
	c, _ := t.claims()
	return c.Subject()
}

func (t *Token) Audience() ([]string, bool) {
	c, _ := t.claims()
	return c.Audience()
}

func (t *Token) ExpirationTime() (time.Time, bool) {
	c, _ := t.claims()
	return c.ExpirationTime()
}

func (t *Token) NotBefore() (time.Time, bool) {
	c, _ := t.claims()
	return c.NotBefore()
}

func (t *Token) IssuedAt() (time.Time, bool) {
	c, _ := t.claims()
	return c.IssuedAt()
}

func (t *Token) JWTID() (string, bool) {
	c, _ := t.claims()
	return c.JWTID()
}

func (t *Token) ClientID() (string, bool) {
	c, _ := t.claims()
	return c.ClientID()
}

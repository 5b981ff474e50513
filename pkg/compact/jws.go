package compact

import (
	"sync"

	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/claims"
	"github.com/cufyorg/jose/pkg/header"
)

// JWS is a compact serialized JSON Web Signature.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-7.1
type JWS struct {
	protected string
	payload   string
	signature string

	views *jwsViews
}

type jwsViews struct {
	header  func() (header.Parameters, bool)
	payload func() (claims.Set, bool)
}

// NewJWS returns a JWS holding the given base64url encoded segments.
func NewJWS(protected, payload, signature string) JWS {
	return JWS{
		protected: protected,
		payload:   payload,
		signature: signature,
		views: &jwsViews{
			header:  sync.OnceValues(func() (header.Parameters, bool) { return decodeHeader(protected) }),
			payload: sync.OnceValues(func() (claims.Set, bool) { return decodeClaims(payload) }),
		},
	}
}

func (t JWS) token() {}

// Shape returns ShapeJWS.
func (t JWS) Shape() Shape { return ShapeJWS }

// Protected returns the base64url encoded header segment.
func (t JWS) Protected() string { return t.protected }

// Payload returns the base64url encoded payload segment.
func (t JWS) Payload() string { return t.payload }

// Signature returns the base64url encoded signature segment, which is
// empty for an unsecured JWS.
func (t JWS) Signature() string { return t.signature }

// SigningInput returns the JWS Signing Input, the header and payload
// segments joined by a period.
func (t JWS) SigningInput() string {
	return t.protected + "." + t.payload
}

func (t JWS) String() string {
	return t.protected + "." + t.payload + "." + t.signature
}

// DecodedHeader returns the decoded header. It is false when the header
// segment is not base64url encoded JSON object text.
func (t JWS) DecodedHeader() (header.Parameters, bool) {
	if t.views == nil {
		return decodeHeader(t.protected)
	}
	h, ok := t.views.header()
	if !ok {
		return header.Parameters{}, false
	}
	return h.Clone(), true
}

// DecodedPayload returns the decoded payload claims. It is false when
// the payload segment is not base64url encoded JSON object text.
func (t JWS) DecodedPayload() (claims.Set, bool) {
	if t.views == nil {
		return decodeClaims(t.payload)
	}
	c, ok := t.views.payload()
	if !ok {
		return claims.Set{}, false
	}
	return c.Clone(), true
}

// DecodedSignature returns the raw signature bytes.
func (t JWS) DecodedSignature() ([]byte, error) {
	return base64.Decode(t.signature)
}

// Alg returns the "alg" header parameter, or the empty string.
func (t JWS) Alg() string { return t.headerString(header.Algorithm) }

// Kid returns the "kid" header parameter, or the empty string.
func (t JWS) Kid() string { return t.headerString(header.KeyID) }

func (t JWS) Typ() string { return t.headerString(header.Type) }

func (t JWS) Cty() string { return t.headerString(header.ContentType) }

func (t JWS) Jku() string { return t.headerString(header.JWKSetURL) }

func (t JWS) Crit() []string { return t.headerList(header.Critical) }

func (t JWS) headerList(name header.ParameterName) []string {
	h, ok := t.DecodedHeader()
	if !ok {
		return nil
	}
	list, _ := h.StringList(name)
	return list
}

func (t JWS) headerString(name header.ParameterName) string {
	h, ok := t.DecodedHeader()
	if !ok {
		return ""
	}
	return h.Lookup(name)
}

func decodeHeader(segment string) (header.Parameters, bool) {
	h, err := header.Decode(segment)
	if err != nil {
		return header.Parameters{}, false
	}
	return h, true
}

func decodeClaims(segment string) (claims.Set, bool) {
	b, err := base64.Decode(segment)
	if err != nil {
		return claims.Set{}, false
	}
	c, err := claims.Parse(b)
	if err != nil {
		return claims.Set{}, false
	}
	return c, true
}

package compact

import (
	"strings"
	"sync"

	"github.com/cufyorg/jose/pkg/header"
)

// JWE is a compact serialized JSON Web Encryption.
//
// https://datatracker.ietf.org/doc/html/rfc7516#section-7.1
type JWE struct {
	protected    string
	encryptedKey string
	iv           string
	ciphertext   string
	tag          string

	header func() (header.Parameters, bool)
}

// NewJWE returns a JWE holding the given base64url encoded segments.
func NewJWE(protected, encryptedKey, iv, ciphertext, tag string) JWE {
	return JWE{
		protected:    protected,
		encryptedKey: encryptedKey,
		iv:           iv,
		ciphertext:   ciphertext,
		tag:          tag,
		header:       sync.OnceValues(func() (header.Parameters, bool) { return decodeHeader(protected) }),
	}
}

func (t JWE) token() {}

// Shape returns ShapeJWE.
func (t JWE) Shape() Shape { return ShapeJWE }

func (t JWE) Protected() string    { return t.protected }
func (t JWE) EncryptedKey() string { return t.encryptedKey }
func (t JWE) IV() string           { return t.iv }
func (t JWE) Ciphertext() string    { return t.ciphertext }
func (t JWE) Tag() string          { return t.tag }

func (t JWE) String() string {
	return strings.Join([]string{t.protected, t.encryptedKey, t.iv, t.ciphertext, t.tag}, ".")
}

// DecodedHeader returns the decoded header. It is false when the header
// segment is not base64url encoded JSON object text.
func (t JWE) DecodedHeader() (header.Parameters, bool) {
	if t.header == nil {
		return decodeHeader(t.protected)
	}
	h, ok := t.header()
	if !ok {
		return header.Parameters{}, false
	}
	return h.Clone(), true
}

func (t JWE) Alg() string    { return t.headerString(header.Algorithm) }
func (t JWE) Enc() string    { return t.headerString(header.Encryption) }
func (t JWE) Zip() string    { return t.headerString(header.Zip) }
func (t JWE) Kid() string    { return t.headerString(header.KeyID) }
func (t JWE) Typ() string    { return t.headerString(header.Type) }
func (t JWE) Cty() string    { return t.headerString(header.ContentType) }
func (t JWE) Jku() string    { return t.headerString(header.JWKSetURL) }
func (t JWE) Crit() []string { return t.headerList(header.Critical) }

func (t JWE) headerString(name header.ParameterName) string {
	h, ok := t.DecodedHeader()
	if !ok {
		return ""
	}
	return h.Lookup(name)
}

func (t JWE) headerList(name header.ParameterName) []string {
	h, ok := t.DecodedHeader()
	if !ok {
		return nil
	}
	list, _ := h.StringList(name)
	return list
}

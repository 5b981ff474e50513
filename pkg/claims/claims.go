// Package claims models the claims set carried by a JSON Web Token payload.
package claims

import (
	"errors"
	"fmt"
	"time"

	"github.com/cufyorg/jose/internal/jsonx"
)

// ErrClaimNotFound is returned when a requested claim is absent.
var ErrClaimNotFound = errors.New("claim not found")

// There are three classes of JWT Claim Names:
// 1. Registered Claim Names
// 2. Public Claim Names
// 3. Private Claim Names
type (
	Name = string

	Registered = Name
	Public     = Name
	Private    = Name
)

// Registered Claim Names
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-4.1
const (
	Issuer         Registered = "iss"
	Subject        Registered = "sub"
	Audience       Registered = "aud"
	ExpirationTime Registered = "exp"
	NotBefore      Registered = "nbf"
	IssuedAt       Registered = "iat"
	JWTID          Registered = "jti"
)

// ClientID is the OAuth 2.0 client identifier claim.
//
// https://datatracker.ietf.org/doc/html/rfc8693#section-4.3
const ClientID Public = "client_id"

// Set is a JSON object that contains the claims conveyed by a JWT.
//
// A claim is a piece of information asserted about a subject, represented
// as a name/value pair consisting of a Claim Name and a Claim Value.
// Claims keep their insertion order.
type Set struct {
	jsonx.Object
}

// New returns an empty claims set.
func New() Set {
	return Set{Object: jsonx.NewObject()}
}

// Parse parses the given JSON text as a claims set. It fails when the
// text is not a JSON object.
func Parse(b []byte) (Set, error) {
	obj, err := jsonx.ParseObject(b)
	if err != nil {
		return Set{}, fmt.Errorf("failed to decode claims JSON: %w", err)
	}
	return Set{Object: obj}, nil
}

// JSON returns the canonical JSON text of the claims set.
func (c Set) JSON() ([]byte, error) {
	b, err := jsonx.Marshal(c.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to encode claims set: %w", err)
	}
	return b, nil
}

// Clone returns an independent copy of the claims set.
func (c Set) Clone() Set {
	return Set{Object: c.Object.Clone()}
}

// Equal reports whether both sets hold the same claims in the same order.
func (c Set) Equal(other Set) bool {
	return c.Object.Equal(other.Object)
}

// Get returns the value of the given claim.
func (c Set) Get(name Name) (any, error) {
	value, ok := c.Object.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: claim %q not found in claims set", ErrClaimNotFound, name)
	}
	return value, nil
}

func (c Set) Issuer() (string, bool) {
	return c.String(Issuer)
}

func (c Set) Subject() (string, bool) {
	return c.String(Subject)
}

// Audience returns the "aud" claim. A single string audience is returned
// as a list of one.
func (c Set) Audience() ([]string, bool) {
	return c.StringListCoerce(Audience)
}

func (c Set) ExpirationTime() (time.Time, bool) {
	return c.Time(ExpirationTime)
}

func (c Set) NotBefore() (time.Time, bool) {
	return c.Time(NotBefore)
}

func (c Set) IssuedAt() (time.Time, bool) {
	return c.Time(IssuedAt)
}

func (c Set) JWTID() (string, bool) {
	return c.String(JWTID)
}

func (c Set) ClientID() (string, bool) {
	return c.String(ClientID)
}

// Time returns the given NumericDate claim, which is a number of seconds
// since the Unix epoch.
func (c Set) Time(name Name) (time.Time, bool) {
	seconds, ok := c.Int64(name)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(seconds, 0), true
}

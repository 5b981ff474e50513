package header

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/cufyorg/jose/internal/jsonx"
	"github.com/cufyorg/jose/pkg/base64"
	"github.com/cufyorg/jose/pkg/jwa"
)

var (
	// ErrParameterNotFound is returned when a requested header parameter is absent.
	ErrParameterNotFound = errors.New("header parameter not found")

	// ErrInvalidParameterType is returned when a header parameter has an unexpected JSON type.
	ErrInvalidParameterType = errors.New("invalid header parameter type")
)

// There are three classes of Header Parameter names: Registered Header
// Parameter names, Public Header Parameter names, and Private Header
// Parameter names.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
type (
	ParameterName = string

	Registered = ParameterName
	Public     = ParameterName
	Private    = ParameterName
)

// Registered Header Parameter Names
//
// JWS: alg         jku jwk kid x5u x5c x5t x5t#S256 typ cty crit
// JWE: alg enc zip jku jwk kid x5u x5c x5t x5t#S256 typ cty crit
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4.1
const (
	Type                            Registered = "typ"
	Algorithm                       Registered = "alg"
	JWKSetURL                       Registered = "jku"
	JSONWebKey                      Registered = "jwk"
	X509URL                         Registered = "x5u"
	X509CertificateChain            Registered = "x5c"
	X509CertificateSHA1Thumbprint   Registered = "x5t"
	X509CertificateSHA256Thumbprint Registered = "x5t#S256"
	ContentType                     Registered = "cty"
	Critical                        Registered = "crit"

	// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1.2
	Encryption Registered = "enc"

	// https://www.rfc-editor.org/rfc/rfc7516.html#section-4.1.3
	Zip Registered = "zip"

	// https://www.rfc-editor.org/rfc/rfc7515.html#section-4.1.4
	KeyID Registered = "kid"
)

const TypeJWT = "JWT"

// Parameters is a JSON object containing the parameters describing
// the cryptographic operations and parameters employed.
//
// The JOSE (JSON Object Signing and Encryption) Header is comprised
// of a set of Header Parameters. Parameters keep their insertion order,
// which is the order they are serialized in.
type Parameters struct {
	jsonx.Object
}

// Pair is a single header parameter, used to build Parameters in order.
type Pair struct {
	Name  ParameterName
	Value any
}

// New returns header parameters holding the given pairs, in order.
func New(pairs ...Pair) Parameters {
	h := Parameters{Object: jsonx.NewObject()}
	for _, pair := range pairs {
		h.Set(pair.Name, pair.Value)
	}
	return h
}

// FromMap returns header parameters holding the entries of the given map.
// Go maps are unordered, so the entries are ordered by name.
func FromMap(m map[ParameterName]any) Parameters {
	h := New()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		h.Set(name, m[name])
	}
	return h
}

// Decode decodes the given base64url encoded header segment.
func Decode(segment string) (Parameters, error) {
	b, err := base64.Decode(segment)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to decode JOSE header base64: %w", err)
	}
	return Parse(b)
}

// Parse parses the given JSON text as header parameters.
func Parse(b []byte) (Parameters, error) {
	obj, err := jsonx.ParseObject(b)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to decode JOSE header JSON: %w", err)
	}
	return Parameters{Object: obj}, nil
}

// Clone returns an independent copy of the parameters.
func (h Parameters) Clone() Parameters {
	return Parameters{Object: h.Object.Clone()}
}

// With returns a copy of the parameters with the given pairs merged in.
// On name collision the later value wins, keeping the earlier position.
func (h Parameters) With(pairs ...Pair) Parameters {
	clone := h.Clone()
	for _, pair := range pairs {
		clone.Set(pair.Name, pair.Value)
	}
	return clone
}

// Merged returns a copy of the parameters with every parameter of
// other merged in.
func (h Parameters) Merged(other Parameters) Parameters {
	clone := h.Clone()
	clone.Merge(other.Object)
	return clone
}

// JSON returns the canonical JSON text of the parameters.
func (h Parameters) JSON() ([]byte, error) {
	b, err := jsonx.Marshal(h.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JOSE header: %w", err)
	}
	return b, nil
}

// Base64URLString returns the base64url encoded canonical JSON text
// of the parameters, as used in the compact serializations.
func (h Parameters) Base64URLString() (string, error) {
	b, err := h.JSON()
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header base64 URL string: %w", err)
	}
	return base64.Encode(b), nil
}

// Equal reports whether both parameter sets hold the same parameters
// in the same order.
func (h Parameters) Equal(other Parameters) bool {
	return h.Object.Equal(other.Object)
}

// Get returns the value of the given parameter.
func (h Parameters) Get(param ParameterName) (any, error) {
	value, ok := h.Object.Get(param)
	if !ok {
		return nil, fmt.Errorf("%w: header does not contain a %q parameter", ErrParameterNotFound, param)
	}
	return value, nil
}

// GetString returns the value of the given parameter if it is a string.
func (h Parameters) GetString(param ParameterName) (string, error) {
	value, ok := h.Object.Get(param)
	if !ok {
		return "", fmt.Errorf("%w: header does not contain a %q parameter", ErrParameterNotFound, param)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: header parameter %q is %T, not a string", ErrInvalidParameterType, param, value)
	}
	return s, nil
}

// Lookup returns the value of the given parameter if it is present and
// is a string, and the empty string otherwise.
func (h Parameters) Lookup(param ParameterName) string {
	s, _ := h.Object.String(param)
	return s
}

func (h Parameters) Type() (string, error) {
	return h.GetString(Type)
}

func (h Parameters) Algorithm() (jwa.Algorithm, error) {
	return h.GetString(Algorithm)
}

func (h Parameters) KeyID() (string, error) {
	return h.GetString(KeyID)
}

func (h Parameters) Encryption() (jwa.Algorithm, error) {
	return h.GetString(Encryption)
}

// Critical returns the "crit" parameter as a list of names.
func (h Parameters) Critical() ([]string, error) {
	if !h.Has(Critical) {
		return nil, fmt.Errorf("%w: header does not contain a %q parameter", ErrParameterNotFound, Critical)
	}
	crit, ok := h.StringList(Critical)
	if !ok {
		return nil, fmt.Errorf("%w: header parameter %q is not a list of strings", ErrInvalidParameterType, Critical)
	}
	return crit, nil
}

package engine

import (
	"errors"
	"fmt"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwe"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jws"
	"github.com/cufyorg/jose/pkg/jwt"
	"github.com/cufyorg/jose/pkg/provider"
)

// Failure kinds. Every error returned by an Engine carries one of these
// as its Kind, so callers can test for it with errors.Is.
var (
	ErrMalformedToken       = compact.ErrMalformedToken
	ErrInvalidKeySet        = jwk.ErrInvalidKeySet
	ErrInvalidKey           = jwk.ErrInvalidKey
	ErrKeyNotFound          = jwk.ErrKeyNotFound
	ErrUnsupportedAlgorithm = jwa.ErrUnsupportedAlgorithm
	ErrInsecureAlgorithm    = jwa.ErrInsecureAlgorithm
	ErrInvalidPayload       = jwt.ErrInvalidPayload

	ErrInvalidSignature  = errors.New("invalid signature")
	ErrDecryptionFailure = errors.New("decryption failure")

	// ErrProvider is the kind of crypto provider failures that match no
	// other kind, such as a cancelled context.
	ErrProvider = errors.New("crypto provider failure")
)

// Operation names, as used by Error.Op and the metric labels.
const (
	OpSign       = "sign"
	OpVerify     = "verify"
	OpVerified   = "verified"
	OpUnverified = "unverified"
	OpEncrypt    = "encrypt"
	OpDecrypt    = "decrypt"
)

// Error is the error returned by every Engine operation.
type Error struct {
	// Op is the operation that failed.
	Op string

	// Kind is one of the failure kinds of this package.
	Kind error

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil || errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("jose: %s: %v", e.Op, e.cause())
	}
	return fmt.Sprintf("jose: %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) cause() error {
	if e.Err == nil {
		return e.Kind
	}
	return e.Err
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// kinds maps the errors of the lower layers onto failure kinds, in
// matching order.
var kinds = []struct {
	match error
	kind  error
}{
	{ErrMalformedToken, ErrMalformedToken},
	{ErrInvalidKeySet, ErrInvalidKeySet},
	{ErrInvalidKey, ErrInvalidKey},
	{jws.ErrInvalidKey, ErrInvalidKey},
	{provider.ErrNoPrivateKey, ErrInvalidKey},
	{ErrKeyNotFound, ErrKeyNotFound},
	{ErrInsecureAlgorithm, ErrInsecureAlgorithm},
	{ErrUnsupportedAlgorithm, ErrUnsupportedAlgorithm},
	{ErrInvalidPayload, ErrInvalidPayload},
	{ErrInvalidSignature, ErrInvalidSignature},
	{jws.ErrInvalidSignature, ErrInvalidSignature},
	{ErrDecryptionFailure, ErrDecryptionFailure},
	{jwe.ErrDecryption, ErrDecryptionFailure},
	{jwe.ErrEncryption, ErrProvider},
}

// wrap returns err as an *Error of the given operation. An *Error is
// forwarded unchanged; otherwise the kind is derived from err, falling
// back to fallback.
func wrap(op string, fallback error, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	for _, k := range kinds {
		if errors.Is(err, k.match) {
			return &Error{Op: op, Kind: k.kind, Err: err}
		}
	}

	return &Error{Op: op, Kind: fallback, Err: err}
}

// fail returns a new *Error of the given operation and kind.
func fail(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)}
}

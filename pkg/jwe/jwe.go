// Package jwe implements JSON Web Encryption (RFC 7516) in the Compact
// Serialization, using go-jose for key management and content encryption.
package jwe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	jose "github.com/go-jose/go-jose/v4"
)

var (
	ErrUnsupportedAlgorithm = fmt.Errorf("encryption: %w", jwa.ErrUnsupportedAlgorithm)
	ErrEncryption           = errors.New("encryption failed")
	ErrDecryption           = errors.New("decryption failed")
)

// Header is a JSON object containing the parameters describing
// the cryptographic operations and parameters employed.
type Header = header.Parameters

// managedParameters are written by the encrypter itself.
var managedParameters = []header.ParameterName{
	header.Algorithm,
	header.Encryption,
	header.KeyID,
	header.Zip,
}

var keyAlgorithms = map[jwa.Algorithm]jose.KeyAlgorithm{
	jwa.RSA1_5:       jose.RSA1_5,
	jwa.RSAOAEP:      jose.RSA_OAEP,
	jwa.RSAOAEP256:   jose.RSA_OAEP_256,
	jwa.ECDHES:       jose.ECDH_ES,
	jwa.ECDHESA128KW: jose.ECDH_ES_A128KW,
	jwa.ECDHESA192KW: jose.ECDH_ES_A192KW,
	jwa.ECDHESA256KW: jose.ECDH_ES_A256KW,
}

var contentEncryptions = map[jwa.Algorithm]jose.ContentEncryption{
	jwa.A128CBCHS256: jose.A128CBC_HS256,
	jwa.A192CBCHS384: jose.A192CBC_HS384,
	jwa.A256CBCHS512: jose.A256CBC_HS512,
	jwa.A128GCM:      jose.A128GCM,
	jwa.A192GCM:      jose.A192GCM,
	jwa.A256GCM:      jose.A256GCM,
}

// Config holds the algorithms that may be used.
type Config struct {
	// AllowedKeyAlgorithms is the set of allowed key management algorithms.
	//
	// If not set, then every supported algorithm is allowed.
	AllowedKeyAlgorithms jwa.AllowedAlgorithms
}

// Option is a functional option type used to configure encryption and
// decryption.
type Option func(*Config)

// WithAllowedKeyAlgorithms sets the allowed key management algorithms.
func WithAllowedKeyAlgorithms(algs jwa.AllowedAlgorithms) Option {
	return func(c *Config) {
		c.AllowedKeyAlgorithms = algs
	}
}

func resolve(alg, enc jwa.Algorithm, opts []Option) (jose.KeyAlgorithm, jose.ContentEncryption, error) {
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}

	keyAlg, ok := keyAlgorithms[alg]
	if !ok {
		return "", "", fmt.Errorf("%w: key management algorithm %q", ErrUnsupportedAlgorithm, alg)
	}

	if config.AllowedKeyAlgorithms != nil && !config.AllowedKeyAlgorithms.Allowed(alg) {
		return "", "", fmt.Errorf("%w: key management algorithm %q is not allowed", jwa.ErrInsecureAlgorithm, alg)
	}

	contentEnc, ok := contentEncryptions[enc]
	if !ok {
		return "", "", fmt.Errorf("%w: content encryption algorithm %q", ErrUnsupportedAlgorithm, enc)
	}

	return keyAlg, contentEnc, nil
}

// Encrypt encrypts the payload for the given recipient key and returns the
// compact serialization. The "kid" and "zip" parameters of h are honored
// and every other parameter except "alg" and "enc" is carried in the
// protected header.
//
// Algorithm(s) to Supported Key Type(s):
//   - RSA1_5, RSA-OAEP, RSA-OAEP-256: *rsa.PublicKey
//   - ECDH-ES, ECDH-ES+A128KW, ECDH-ES+A192KW, ECDH-ES+A256KW: *ecdsa.PublicKey
func Encrypt(payload []byte, h Header, key any, alg, enc jwa.Algorithm, opts ...Option) (string, error) {
	keyAlg, contentEnc, err := resolve(alg, enc, opts)
	if err != nil {
		return "", err
	}

	options := &jose.EncrypterOptions{}

	switch zip := h.Lookup(header.Zip); zip {
	case "":
	case jwa.DEF:
		options.Compression = jose.DEFLATE
	default:
		return "", fmt.Errorf("%w: compression algorithm %q", ErrUnsupportedAlgorithm, zip)
	}

	h.Range(func(name string, value any) bool {
		for _, managed := range managedParameters {
			if name == managed {
				return true
			}
		}
		options.WithHeader(jose.HeaderKey(name), value)
		return true
	})

	encrypter, err := jose.NewEncrypter(contentEnc, jose.Recipient{
		Algorithm: keyAlg,
		Key:       key,
		KeyID:     h.Lookup(header.KeyID),
	}, options)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	object, err := encrypter.Encrypt(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	serialized, err := object.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return serialized, nil
}

// Decrypt decrypts the given compact serialization with the recipient
// private key. Only the given key management and content encryption
// algorithms are accepted.
//
// Algorithm(s) to Supported Key Type(s):
//   - RSA1_5, RSA-OAEP, RSA-OAEP-256: *rsa.PrivateKey
//   - ECDH-ES, ECDH-ES+A128KW, ECDH-ES+A192KW, ECDH-ES+A256KW: *ecdsa.PrivateKey
func Decrypt(token string, key any, alg, enc jwa.Algorithm, opts ...Option) (Header, []byte, error) {
	keyAlg, contentEnc, err := resolve(alg, enc, opts)
	if err != nil {
		return Header{}, nil, err
	}

	protected, _, _ := strings.Cut(token, ".")

	h, err := header.Decode(protected)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	object, err := jose.ParseEncryptedCompact(token, []jose.KeyAlgorithm{keyAlg}, []jose.ContentEncryption{contentEnc})
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	payload, err := object.Decrypt(key)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return h, payload, nil
}

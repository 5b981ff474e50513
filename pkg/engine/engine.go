// Package engine signs, verifies, encrypts and decrypts JSON Web Tokens
// with keys selected from a JWK set.
//
// An Engine resolves the algorithm and key of each operation, delegates
// the cryptography to a Provider and serializes the result in the compact
// form. It holds no mutable state and is safe for concurrent use.
package engine

import (
	"context"
	"fmt"

	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Constraints are the algorithm restrictions passed to the Provider.
type Constraints = jwa.Constraints

// Provider performs the cryptographic operations of an Engine. The key is
// always the one selected for the operation and alg (and enc) the
// effective algorithms.
type Provider interface {
	Sign(ctx context.Context, signingInput []byte, key jwk.Key, alg jwa.Algorithm, c Constraints) ([]byte, error)
	Verify(ctx context.Context, signingInput, signature []byte, key jwk.Key, alg jwa.Algorithm, c Constraints) (bool, error)
	Encrypt(ctx context.Context, h header.Parameters, payload []byte, key jwk.Key, alg, enc jwa.Algorithm, c Constraints) (compact.JWE, error)
	Decrypt(ctx context.Context, token compact.JWE, key jwk.Key, alg, enc jwa.Algorithm, c Constraints) (header.Parameters, []byte, error)
}

var _ Provider = provider.Default{}

// Engine runs JOSE operations. The zero value is not usable; use New.
type Engine struct {
	provider    Provider
	logger      *zap.Logger
	metrics     *metrics
	constraints Constraints
}

// Option is a functional option type used to configure an Engine.
type Option func(*Engine) error

// WithProvider sets the crypto provider. The default is provider.Default.
func WithProvider(p Provider) Option {
	return func(e *Engine) error {
		if p == nil {
			return fmt.Errorf("nil provider")
		}
		e.provider = p
		return nil
	}
}

// WithLogger sets the logger. Key selection is logged at debug level and
// failures at warn level. Key material and payloads are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		e.logger = logger
		return nil
	}
}

// WithMetrics registers the engine metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		e.metrics = m
		return nil
	}
}

// WithDefaultConstraints sets the constraints applied when a call enforces
// constraints. The default is jwa.DefaultConstraints.
func WithDefaultConstraints(c Constraints) Option {
	return func(e *Engine) error {
		c.Enforced = true
		e.constraints = c
		return nil
	}
}

// New returns an engine configured with the given options.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		provider:    provider.Default{},
		logger:      zap.NewNop(),
		constraints: jwa.DefaultConstraints(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to configure engine: %w", err)
		}
	}

	return e, nil
}

// CallOption configures a single operation.
type CallOption func(*callConfig)

type callConfig struct {
	enforce     bool
	constraints *Constraints
}

// WithConstraints sets whether constraints are enforced. They are by
// default.
func WithConstraints(enforce bool) CallOption {
	return func(c *callConfig) {
		c.enforce = enforce
	}
}

// WithCustomConstraints replaces the engine constraints for this call.
func WithCustomConstraints(constraints Constraints) CallOption {
	return func(c *callConfig) {
		c.constraints = &constraints
	}
}

func (e *Engine) resolve(opts []CallOption) Constraints {
	config := &callConfig{enforce: true}
	for _, opt := range opts {
		opt(config)
	}

	c := e.constraints
	if config.constraints != nil {
		c = *config.constraints
	}
	c.Enforced = config.enforce && c.Enforced

	return c
}

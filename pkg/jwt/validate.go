package jwt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cufyorg/jose/pkg/claims"
)

var (
	ErrExpired          = errors.New("token is expired")
	ErrNotYetValid      = errors.New("token is not valid yet")
	ErrIssuerNotAllowed = errors.New("token issuer is not allowed")
	ErrAudienceMismatch = errors.New("token audience is not allowed")
	ErrInvalidClaim     = errors.New("token contains an invalid claim value")
)

// Clock is type used to represent a function that returns the current time.
type Clock func() time.Time

// ValidateConfig is a configuration type for validating token claims.
type ValidateConfig struct {
	// AllowedIssuers is a set of allowed issuers for the token.
	//
	// If not set, then any issuers are allowed.
	AllowedIssuers []string

	// AllowedAudiences is a set of allowed audiences for the token.
	// At least one of the token audiences must be allowed.
	//
	// If not set, then any audiences are allowed.
	AllowedAudiences []string

	// Clock is a function that returns the current time.
	//
	// This is used to validate the "exp" and "nbf" claims.
	//
	// If not set, then time.Now will be used.
	Clock Clock

	// Leeway is the tolerance applied to the "exp" and "nbf" claims.
	Leeway time.Duration
}

// ValidateOption is a functional option type used to configure
// the validation requirements for token claims.
type ValidateOption func(*ValidateConfig) error

// WithAllowedIssuers sets the allowed issuers for the token.
func WithAllowedIssuers(issuers ...string) ValidateOption {
	return func(vc *ValidateConfig) error {
		vc.AllowedIssuers = issuers
		return nil
	}
}

// WithAllowedAudiences sets the allowed audiences for the token.
func WithAllowedAudiences(audiences ...string) ValidateOption {
	return func(vc *ValidateConfig) error {
		vc.AllowedAudiences = audiences
		return nil
	}
}

// WithClock sets the clock function for validating the token.
func WithClock(clock Clock) ValidateOption {
	return func(vc *ValidateConfig) error {
		if clock == nil {
			return fmt.Errorf("nil clock")
		}
		vc.Clock = clock
		return nil
	}
}

// WithLeeway sets the tolerance for time based claims.
func WithLeeway(leeway time.Duration) ValidateOption {
	return func(vc *ValidateConfig) error {
		if leeway < 0 {
			return fmt.Errorf("negative leeway %v", leeway)
		}
		vc.Leeway = leeway
		return nil
	}
}

// Expired returns true if the token has an expiration time claim that is
// before the time returned by the given clock.
func (t *Token) Expired(clock Clock) bool {
	exp, ok := t.ExpirationTime()
	if !ok {
		return false
	}
	return exp.Before(clock())
}

// Validate validates the registered claims of the token with the given
// config options. The payload must be a JSON object.
//
// # Warning
//
// This does not verify any signature. Only validate tokens returned by a
// successful verification or decryption.
func (t *Token) Validate(opts ...ValidateOption) error {
	config := &ValidateConfig{
		Clock: time.Now,
	}

	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return fmt.Errorf("validate option error: %w", err)
		}
	}

	c, ok := t.Claims()
	if !ok {
		return fmt.Errorf("%w: payload is not a JSON object, cannot validate claims", ErrInvalidPayload)
	}

	// If the allowed issuers is empty, then any issuer is allowed.
	if config.AllowedIssuers != nil {
		issuer, _ := c.Issuer()
		if !slices.Contains(config.AllowedIssuers, issuer) {
			return fmt.Errorf("%w: %q", ErrIssuerNotAllowed, issuer)
		}
	}

	// If the allowed audiences is empty, then any audience is allowed.
	if config.AllowedAudiences != nil {
		audiences, _ := c.Audience()
		if !slices.ContainsFunc(audiences, func(aud string) bool {
			return slices.Contains(config.AllowedAudiences, aud)
		}) {
			return fmt.Errorf("%w: %q", ErrAudienceMismatch, audiences)
		}
	}

	now := config.Clock()

	if c.Has(claims.ExpirationTime) {
		exp, ok := c.ExpirationTime()
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidClaim, claims.ExpirationTime)
		}
		if !now.Before(exp.Add(config.Leeway)) {
			return fmt.Errorf("%w: expired at %v", ErrExpired, exp)
		}
	}

	if c.Has(claims.NotBefore) {
		nbf, ok := c.NotBefore()
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidClaim, claims.NotBefore)
		}
		if now.Add(config.Leeway).Before(nbf) {
			return fmt.Errorf("%w: unable to be used before %v", ErrNotYetValid, nbf)
		}
	}

	return nil
}

package jwa

// Constraints are the algorithm restrictions applied to an operation.
//
// When Enforced is false every restriction is lifted, including the
// rejection of "none".
type Constraints struct {
	Enforced bool

	// MinimumRSAKeySize is the smallest accepted RSA modulus in bits.
	MinimumRSAKeySize int

	// SignatureAlgorithms lists the accepted signature algorithms. A nil
	// set accepts every algorithm except "none".
	SignatureAlgorithms AllowedAlgorithms

	// KeyManagementAlgorithms lists the accepted key management
	// algorithms. A nil set accepts every algorithm.
	KeyManagementAlgorithms AllowedAlgorithms
}

// DefaultConstraints returns the constraints enforced unless a caller
// opts out: RSA keys of at least 2048 bits, no "none" signatures and no
// RSA1_5 key management.
func DefaultConstraints() Constraints {
	return Constraints{
		Enforced:                true,
		MinimumRSAKeySize:       2048,
		SignatureAlgorithms:     ConstrainedSignatureAlgorithms(),
		KeyManagementAlgorithms: ConstrainedKeyManagementAlgorithms(),
	}
}

// Unconstrained returns constraints that allow everything.
func Unconstrained() Constraints {
	return Constraints{}
}

// SignatureAllowed reports whether alg may be used to sign or verify.
func (c Constraints) SignatureAllowed(alg Algorithm) bool {
	if !c.Enforced {
		return true
	}
	if alg == None {
		return false
	}
	return c.SignatureAlgorithms == nil || c.SignatureAlgorithms.Allowed(alg)
}

// KeyManagementSet returns the key management algorithms that may be
// used to encrypt or decrypt a content encryption key, or nil when every
// algorithm may be used.
func (c Constraints) KeyManagementSet() AllowedAlgorithms {
	if !c.Enforced {
		return nil
	}
	return c.KeyManagementAlgorithms
}

// RSAKeySize returns the smallest accepted RSA modulus in bits, or zero
// when no minimum applies.
func (c Constraints) RSAKeySize() int {
	if !c.Enforced {
		return 0
	}
	return c.MinimumRSAKeySize
}

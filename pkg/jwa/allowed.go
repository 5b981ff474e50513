package jwa

import "slices"

// AllowedAlgorithms is a set of algorithms that may be used.
type AllowedAlgorithms map[Algorithm]struct{}

// NewAllowedAlgorithms returns a set holding the given algorithms.
func NewAllowedAlgorithms(algs ...Algorithm) AllowedAlgorithms {
	set := make(AllowedAlgorithms, len(algs))
	for _, alg := range algs {
		set[alg] = struct{}{}
	}
	return set
}

// Allowed reports whether every given algorithm is in the set. It is false
// when no algorithm is given.
func (a AllowedAlgorithms) Allowed(algs ...Algorithm) bool {
	if len(algs) == 0 {
		return false
	}
	for _, alg := range algs {
		if _, ok := a[alg]; !ok {
			return false
		}
	}
	return true
}

// List returns the algorithms in the set, sorted by name.
func (a AllowedAlgorithms) List() []Algorithm {
	list := make([]Algorithm, 0, len(a))
	for alg := range a {
		list = append(list, alg)
	}
	slices.Sort(list)
	return list
}

// Without returns a copy of the set without the given algorithms.
func (a AllowedAlgorithms) Without(algs ...Algorithm) AllowedAlgorithms {
	set := make(AllowedAlgorithms, len(a))
	for alg := range a {
		if !slices.Contains(algs, alg) {
			set[alg] = struct{}{}
		}
	}
	return set
}

// ConstrainedKeyManagementAlgorithms returns the key management algorithms
// that are allowed when constraints are enforced. RSA1_5 is excluded
// (RFC 8725 Section 3.2).
func ConstrainedKeyManagementAlgorithms() AllowedAlgorithms {
	return NewAllowedAlgorithms(KeyManagementAlgorithms()...).Without(RSA1_5)
}

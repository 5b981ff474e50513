package jwk

import (
	"slices"

	"github.com/cufyorg/jose/pkg/jwa"
)

// FilterSorted returns the keys of the set that may serve the given use
// and operation, most specific first. The kid and alg hints are optional.
//
// Keys are filtered in this order:
//
//  1. When kid is given, keys with a different "kid" are dropped.
//  2. Keys whose "use" is set and differs from use are dropped.
//  3. Keys whose "key_ops" contains op are dropped.
//  4. When alg is given, keys whose "alg" is set and differs are dropped,
//     then keys whose type is not compatible with alg.
//
// The remaining keys are ordered by how much they declare: a "kid" counts
// for more than "use", "key_ops" and "alg" together. Ties keep set order.
func (s Set) FilterSorted(use, op, kid, alg string) []Key {
	candidates := make([]Key, 0, len(s.keys))

	for _, key := range s.keys {
		if kid != "" && key.Kid() != kid {
			continue
		}
		if key.Use() != "" && key.Use() != use {
			continue
		}
		// Keys listing op are excluded, not required.
		if slices.Contains(key.KeyOps(), op) {
			continue
		}
		if alg != "" {
			if key.Alg() != "" && key.Alg() != alg {
				continue
			}
			if !jwa.IsCompatible(key.Kty(), alg) {
				continue
			}
		}
		candidates = append(candidates, key)
	}

	slices.SortStableFunc(candidates, func(a, b Key) int {
		return specificity(a) - specificity(b)
	})

	return candidates
}

// specificity scores a key; lower is more specific.
func specificity(key Key) int {
	score := 0
	if key.Kid() != "" {
		score -= 100
	}
	if key.Use() != "" {
		score--
	}
	if key.KeyOps() != nil {
		score--
	}
	if key.Alg() != "" {
		score--
	}
	return score
}

func (s Set) FilterSortedSign(kid, alg string) []Key {
	return s.FilterSorted(jwa.UseSignature, OpSign, kid, alg)
}

func (s Set) FilterSortedVerify(kid, alg string) []Key {
	return s.FilterSorted(jwa.UseSignature, OpVerify, kid, alg)
}

func (s Set) FilterSortedEncrypt(kid, alg string) []Key {
	return s.FilterSorted(jwa.UseEncryption, OpEncrypt, kid, alg)
}

func (s Set) FilterSortedDecrypt(kid, alg string) []Key {
	return s.FilterSorted(jwa.UseEncryption, OpDecrypt, kid, alg)
}

// FindSign returns the most specific key for signing.
func (s Set) FindSign(kid, alg string) (Key, bool) {
	return first(s.FilterSortedSign(kid, alg))
}

// FindVerify returns the most specific key for verifying a signature.
func (s Set) FindVerify(kid, alg string) (Key, bool) {
	return first(s.FilterSortedVerify(kid, alg))
}

// FindEncrypt returns the most specific key for encrypting.
func (s Set) FindEncrypt(kid, alg string) (Key, bool) {
	return first(s.FilterSortedEncrypt(kid, alg))
}

// FindDecrypt returns the most specific key for decrypting.
func (s Set) FindDecrypt(kid, alg string) (Key, bool) {
	return first(s.FilterSortedDecrypt(kid, alg))
}

func first(keys []Key) (Key, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	return keys[0], true
}

package jwa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAllowedAlgorithms(t *testing.T) {
	constrained := ConstrainedSignatureAlgorithms()

	tests := []struct {
		Name    string
		Allowed []Algorithm
		Require func(t *testing.T, algs AllowedAlgorithms)
	}{
		{
			Name:    "none allowed",
			Allowed: []Algorithm{},
			Require: func(t *testing.T, algs AllowedAlgorithms) {
				require.Empty(t, algs)
				require.Empty(t, algs.List())
				require.False(t, algs.Allowed(constrained.List()...))
			},
		},
		{
			Name:    "constrained signatures",
			Allowed: constrained.List(),
			Require: func(t *testing.T, algs AllowedAlgorithms) {
				require.Len(t, algs, len(SignatureAlgorithms()))
				require.True(t, algs.Allowed(RS256, ES256K, EdDSA, HS512))
				require.False(t, algs.Allowed(None))
				require.False(t, algs.Allowed(RS256, None))
			},
		},
		{
			Name:    "duplicates collapse",
			Allowed: []Algorithm{RS256, RS256, ES384},
			Require: func(t *testing.T, algs AllowedAlgorithms) {
				require.Equal(t, []Algorithm{ES384, RS256}, algs.List())
			},
		},
		{
			Name:    "no algorithm is never allowed",
			Allowed: []Algorithm{RS256},
			Require: func(t *testing.T, algs AllowedAlgorithms) {
				require.False(t, algs.Allowed())
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			algs := NewAllowedAlgorithms(test.Allowed...)
			if test.Require != nil {
				test.Require(t, algs)
			}
		})
	}
}

func TestConstrainedKeyManagementAlgorithms(t *testing.T) {
	algs := ConstrainedKeyManagementAlgorithms()
	require.False(t, algs.Allowed(RSA1_5))
	require.True(t, algs.Allowed(RSAOAEP, RSAOAEP256, ECDHES, ECDHESA256KW))
	require.Len(t, algs, len(KeyManagementAlgorithms())-1)
}

func TestDefaultSignAlgorithm(t *testing.T) {
	tests := []struct {
		kty, use string
		alg      Algorithm
		want     Algorithm
	}{
		{KeyTypeRSA, "", "", RS384},
		{KeyTypeRSA, UseSignature, "", RS384},
		{KeyTypeEC, "", "", ES384},
		{KeyTypeEC, UseSignature, ES256, ES256},
		{KeyTypeRSA, UseEncryption, "", ""},
		{KeyTypeRSA, UseEncryption, RS256, ""},
		{KeyTypeOct, "", "", ""},
		{KeyTypeOct, "", HS256, HS256},
	}

	for _, test := range tests {
		t.Run(test.kty+"/"+test.use+"/"+test.alg, func(t *testing.T) {
			require.Equal(t, test.want, DefaultSignAlgorithm(test.kty, test.use, test.alg))
		})
	}
}

func TestDefaultEncryptAlgorithm(t *testing.T) {
	tests := []struct {
		kty, use string
		alg      Algorithm
		want     Algorithm
	}{
		{KeyTypeRSA, "", "", RSAOAEP256},
		{KeyTypeRSA, UseEncryption, "", RSAOAEP256},
		{KeyTypeEC, "", "", ECDHESA256KW},
		{KeyTypeEC, UseEncryption, ECDHES, ECDHES},
		{KeyTypeEC, UseSignature, "", ""},
		{KeyTypeOKP, "", "", ""},
	}

	for _, test := range tests {
		t.Run(test.kty+"/"+test.use+"/"+test.alg, func(t *testing.T) {
			require.Equal(t, test.want, DefaultEncryptAlgorithm(test.kty, test.use, test.alg))
		})
	}
}

func TestDefaultContentEncryption(t *testing.T) {
	require.Equal(t, A128CBCHS256, DefaultContentEncryption("", "", ""))
	require.Equal(t, A128CBCHS256, DefaultContentEncryption(KeyTypeEC, UseSignature, A256GCM))
}

func TestIsCompatible(t *testing.T) {
	for _, alg := range []Algorithm{RS256, RS384, RS512, PS256, PS384, PS512, RSA1_5, RSAOAEP, RSAOAEP256} {
		require.True(t, IsCompatible(KeyTypeRSA, alg), alg)
		require.False(t, IsCompatible(KeyTypeEC, alg), alg)
	}

	for _, alg := range []Algorithm{ES256, ES384, ES512, ES256K, EdDSA, ECDHES, ECDHESA128KW, ECDHESA192KW, ECDHESA256KW} {
		require.True(t, IsCompatible(KeyTypeEC, alg), alg)
		require.False(t, IsCompatible(KeyTypeRSA, alg), alg)
	}

	require.False(t, IsCompatible(KeyTypeOct, HS256))
	require.False(t, IsCompatible(KeyTypeRSA, None))
	require.False(t, IsCompatible("", RS256))
}

func TestConstraints(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := DefaultConstraints()
		require.True(t, c.Enforced)
		require.False(t, c.SignatureAllowed(None))
		require.True(t, c.SignatureAllowed(RS256))
		require.True(t, c.SignatureAllowed(ES256K))
		require.False(t, c.KeyManagementSet().Allowed(RSA1_5))
		require.True(t, c.KeyManagementSet().Allowed(RSAOAEP256))
		require.Equal(t, 2048, c.RSAKeySize())
	})

	t.Run("unconstrained", func(t *testing.T) {
		c := Unconstrained()
		require.False(t, c.Enforced)
		require.True(t, c.SignatureAllowed(None))
		require.Nil(t, c.KeyManagementSet())
		require.Zero(t, c.RSAKeySize())
	})

	t.Run("nil sets", func(t *testing.T) {
		c := Constraints{Enforced: true}
		require.False(t, c.SignatureAllowed(None))
		require.True(t, c.SignatureAllowed(HS256))
		require.Nil(t, c.KeyManagementSet())

		c.Enforced = false
		c.KeyManagementAlgorithms = ConstrainedKeyManagementAlgorithms()
		require.Nil(t, c.KeyManagementSet())
	})
}

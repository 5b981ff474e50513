package jwe

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	ecKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name    string
		alg     jwa.Algorithm
		enc     jwa.Algorithm
		public  any
		private any
	}{
		{"RSA-OAEP-256", jwa.RSAOAEP256, jwa.A128CBCHS256, &rsaKey.PublicKey, rsaKey},
		{"RSA-OAEP", jwa.RSAOAEP, jwa.A256GCM, &rsaKey.PublicKey, rsaKey},
		{"RSA1_5", jwa.RSA1_5, jwa.A128GCM, &rsaKey.PublicKey, rsaKey},
		{"ECDH-ES", jwa.ECDHES, jwa.A256CBCHS512, &ecKey.PublicKey, ecKey},
		{"ECDH-ES+A256KW", jwa.ECDHESA256KW, jwa.A128CBCHS256, &ecKey.PublicKey, ecKey},
		{"ECDH-ES+A128KW", jwa.ECDHESA128KW, jwa.A192GCM, &ecKey.PublicKey, ecKey},
	}

	payload := []byte(`{"sub":"lsafer"}`)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := header.New(
				header.Pair{Name: header.Type, Value: "jwt"},
				header.Pair{Name: header.KeyID, Value: "key-1"},
			)

			token, err := Encrypt(payload, h, test.public, test.alg, test.enc)
			require.NoError(t, err)

			decoded, plaintext, err := Decrypt(token, test.private, test.alg, test.enc)
			require.NoError(t, err)
			require.Equal(t, payload, plaintext)

			require.Equal(t, test.alg, decoded.Lookup(header.Algorithm))
			require.Equal(t, test.enc, decoded.Lookup(header.Encryption))
			require.Equal(t, "key-1", decoded.Lookup(header.KeyID))
			require.Equal(t, "jwt", decoded.Lookup(header.Type))
		})
	}
}

func TestCompression(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	h := header.New(header.Pair{Name: header.Zip, Value: jwa.DEF})

	token, err := Encrypt([]byte("compress me compress me compress me"), h, &key.PublicKey, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.NoError(t, err)

	decoded, plaintext, err := Decrypt(token, key, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.NoError(t, err)
	require.Equal(t, "compress me compress me compress me", string(plaintext))
	require.Equal(t, "DEF", decoded.Lookup(header.Zip))

	_, err = Encrypt([]byte("x"), header.New(header.Pair{Name: header.Zip, Value: "GZ"}), &key.PublicKey, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestAllowedKeyAlgorithms(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	constrained := WithAllowedKeyAlgorithms(jwa.ConstrainedKeyManagementAlgorithms())

	_, err = Encrypt([]byte("x"), header.New(), &key.PublicKey, jwa.RSA1_5, jwa.A128CBCHS256, constrained)
	require.ErrorIs(t, err, jwa.ErrInsecureAlgorithm)

	token, err := Encrypt([]byte("x"), header.New(), &key.PublicKey, jwa.RSA1_5, jwa.A128CBCHS256)
	require.NoError(t, err)

	_, _, err = Decrypt(token, key, jwa.RSA1_5, jwa.A128CBCHS256, constrained)
	require.ErrorIs(t, err, jwa.ErrInsecureAlgorithm)

	_, _, err = Decrypt(token, key, jwa.RSA1_5, jwa.A128CBCHS256, WithAllowedKeyAlgorithms(nil))
	require.NoError(t, err)
}

func TestDecryptFailures(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := Encrypt([]byte("x"), header.New(), &key.PublicKey, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.NoError(t, err)

	_, _, err = Decrypt(token, other, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.ErrorIs(t, err, ErrDecryption)

	_, _, err = Decrypt(token, key, jwa.RSAOAEP, jwa.A128CBCHS256)
	require.ErrorIs(t, err, ErrDecryption)

	_, _, err = Decrypt("not.a.token", key, jwa.RSAOAEP256, jwa.A128CBCHS256)
	require.ErrorIs(t, err, ErrDecryption)

	_, _, err = Decrypt(token, key, jwa.RSAOAEP256, "A1GCM")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

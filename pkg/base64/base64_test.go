package base64

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		Name  string
		Input []byte
	}{
		{
			Name:  "plaintext",
			Input: []byte("hello world"),
		},
		{
			Name:  "jwt header",
			Input: []byte(`{"typ":"jwt","alg":"RS256","kid":"-O4Ur3EdjSdevnsO"}`),
		},
		{
			Name: "random bytes",
			Input: func() []byte {
				numBytes := 32
				buff := make([]byte, numBytes)

				n, err := rand.Read(buff)
				require.NoError(t, err)
				require.Equal(t, n, numBytes)

				t.Logf("random bytes for test: %x", buff)

				return buff
			}(),
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoded := Encode(test.Input)
			require.NotEmpty(t, encoded)
			require.NotContains(t, encoded, "=")

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, test.Input, decoded)
		})
	}
}

func TestDecodePadding(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{name: "unpadded", input: "eyJzdWIiOiJsc2FmZXIifQ", output: `{"sub":"lsafer"}`},
		{name: "padded", input: "eyJzdWIiOiJsc2FmZXIifQ==", output: `{"sub":"lsafer"}`},
		{name: "empty", input: "", output: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			decoded, err := DecodeString(test.input)
			require.NoError(t, err)
			require.Equal(t, test.output, decoded)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("not+url/safe")
	require.Error(t, err)
}

func TestEncodeEmpty(t *testing.T) {
	require.Equal(t, "", Encode(nil))
	require.Equal(t, "", EncodeString(""))
}

package jsonx

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeepsOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names []string
	}{
		{
			name:  "header",
			input: `{"typ":"jwt","alg":"RS256","kid":"-O4Ur3EdjSdevnsO"}`,
			names: []string{"typ", "alg", "kid"},
		},
		{
			name:  "reverse alphabetical",
			input: `{"z":1,"y":2,"x":3}`,
			names: []string{"z", "y", "x"},
		},
		{
			name:  "empty",
			input: `{}`,
			names: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			obj, err := ParseObject([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, test.names, obj.Names())

			out, err := Marshal(obj)
			require.NoError(t, err)
			require.Equal(t, test.input, string(out))
		})
	}
}

func TestParseNested(t *testing.T) {
	input := `{"b":{"y":[1,"two",{"q":null,"p":true}],"x":1.5},"a":12345678901234567890}`

	obj, err := ParseObject([]byte(input))
	require.NoError(t, err)

	nested, ok := obj.Get("b")
	require.True(t, ok)
	require.IsType(t, Object{}, nested)
	require.Equal(t, []string{"y", "x"}, nested.(Object).Names())

	out, err := Marshal(obj)
	require.NoError(t, err)
	require.Equal(t, input, string(out))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed", input: `{"a":`},
		{name: "trailing data", input: `{"a":1} {"b":2}`},
		{name: "empty", input: ``},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			require.Error(t, err)
		})
	}

	_, err := ParseObject([]byte(`["not","an","object"]`))
	require.ErrorIs(t, err, ErrNotObject)
}

func TestObjectSetKeepsPosition(t *testing.T) {
	var obj Object
	obj.Set("typ", "jwt")
	obj.Set("alg", "RS256")
	obj.Set("typ", "JWT")
	obj.Set("kid", "key-1")

	require.Equal(t, []string{"typ", "alg", "kid"}, obj.Names())

	out, err := Marshal(obj)
	require.NoError(t, err)
	require.Equal(t, `{"typ":"JWT","alg":"RS256","kid":"key-1"}`, string(out))

	obj.Delete("alg")
	require.Equal(t, []string{"typ", "kid"}, obj.Names())
}

func TestObjectCloneIsIndependent(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)

	clone := obj.Clone()
	clone.Set("b", 2)

	require.Equal(t, 1, obj.Len())
	require.Equal(t, 2, clone.Len())
}

func TestObjectAccessors(t *testing.T) {
	obj, err := ParseObject([]byte(`{"s":"v","l":["a","b"],"mixed":["a",1],"n":1516239022,"f":1.9}`))
	require.NoError(t, err)

	s, ok := obj.String("s")
	require.True(t, ok)
	require.Equal(t, "v", s)

	_, ok = obj.String("n")
	require.False(t, ok)

	l, ok := obj.StringList("l")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, l)

	_, ok = obj.StringList("mixed")
	require.False(t, ok)

	coerced, ok := obj.StringListCoerce("s")
	require.True(t, ok)
	require.Equal(t, []string{"v"}, coerced)

	n, ok := obj.Int64("n")
	require.True(t, ok)
	require.Equal(t, int64(1516239022), n)

	f, ok := obj.Int64("f")
	require.True(t, ok)
	require.Equal(t, int64(1), f)

	_, ok = obj.Int64("missing")
	require.False(t, ok)
}

func TestInt64OutOfRange(t *testing.T) {
	obj, err := ParseObject([]byte(`{"big":1e300,"small":-1e300,"edge":9223372036854775807,"over":9.3e18}`))
	require.NoError(t, err)

	for _, name := range []string{"big", "small", "over"} {
		_, ok := obj.Int64(name)
		require.False(t, ok, name)
	}

	edge, ok := obj.Int64("edge")
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), edge)

	var set Object
	set.Set("f", float64(1e300))
	_, ok = set.Int64("f")
	require.False(t, ok)
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	var obj Object
	obj.Set("iss", "https://example.com/?a=1&b=<2>")

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	require.Contains(t, string(out), "iss")

	out, err = Marshal(obj)
	require.NoError(t, err)
	require.Equal(t, `{"iss":"https://example.com/?a=1&b=<2>"}`, string(out))
}

func TestObjectEqual(t *testing.T) {
	a, err := ParseObject([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	b, err := ParseObject([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	c, err := ParseObject([]byte(`{"b":2,"a":1}`))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

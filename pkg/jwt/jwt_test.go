package jwt_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/cufyorg/jose/pkg/claims"
	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwt"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T) *jwt.Token {
	t.Helper()

	token, err := jwt.Build(func(b *jwt.Builder) {
		b.Header.Set(header.Type, "jwt")
		b.Header.Set(header.Algorithm, jwa.RS256)
		b.Payload.Set(claims.Subject, "lsafer")
	})
	require.NoError(t, err)

	return token
}

func TestBuild(t *testing.T) {
	token := testToken(t)

	require.Equal(t, `{"sub":"lsafer"}`, token.Payload())
	require.Equal(t, []string{"typ", "alg"}, token.Header().Names())
	require.Equal(t, "RS256", token.Alg())
	require.Equal(t, "jwt", token.Typ())
	require.Empty(t, token.Kid())

	sub, ok := token.Subject()
	require.True(t, ok)
	require.Equal(t, "lsafer", sub)
}

func TestBuilderDoesNotLeak(t *testing.T) {
	b := jwt.NewBuilder()
	b.Payload.Set(claims.Subject, "a")

	token, err := b.Build()
	require.NoError(t, err)

	b.Payload.Set(claims.Subject, "b")
	b.Header.Set(header.Algorithm, jwa.None)

	require.Equal(t, `{"sub":"a"}`, token.Payload())
	require.Empty(t, token.Alg())
}

func TestHeaderIsACopy(t *testing.T) {
	token := testToken(t)

	h := token.Header()
	h.Set(header.Algorithm, jwa.None)

	require.Equal(t, "RS256", token.Alg())
}

func TestNew(t *testing.T) {
	tests := []struct {
		Name    string
		Payload string
		Claims  bool
	}{
		{"object", `{"sub":"lsafer"}`, true},
		{"empty object", `{}`, true},
		{"array", `["sub"]`, false},
		{"text", `hello`, false},
		{"empty", ``, false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			token := jwt.New(test.Payload, header.New())
			require.Equal(t, test.Payload, token.Payload())

			_, ok := token.Claims()
			require.Equal(t, test.Claims, ok)
		})
	}
}

func TestWithHeaders(t *testing.T) {
	token := testToken(t)

	next := token.WithHeaders(
		header.Pair{Name: header.Algorithm, Value: jwa.ES384},
		header.Pair{Name: header.KeyID, Value: "key-1"},
	)

	require.Equal(t, []string{"typ", "alg", "kid"}, next.Header().Names())
	require.Equal(t, "ES384", next.Alg())
	require.Equal(t, "key-1", next.Kid())
	require.Equal(t, token.Payload(), next.Payload())

	// The original is untouched.
	require.Equal(t, "RS256", token.Alg())
	require.Empty(t, token.Kid())

	merged := token.WithHeader(header.New(header.Pair{Name: header.ContentType, Value: "JWT"}))
	require.Equal(t, "JWT", merged.Cty())
}

func TestAppend(t *testing.T) {
	token := testToken(t)

	next, err := token.Append(func(b *jwt.Builder) {
		b.Header.Set(header.KeyID, "key-1")
		b.Payload.Set(claims.Issuer, "cufy")
		b.Payload.Set(claims.Subject, "someone")
	})
	require.NoError(t, err)

	require.Equal(t, `{"sub":"someone","iss":"cufy"}`, next.Payload())
	require.Equal(t, []string{"typ", "alg", "kid"}, next.Header().Names())
	require.Equal(t, `{"sub":"lsafer"}`, token.Payload())
}

func TestAppendInvalidPayload(t *testing.T) {
	token := jwt.New("not json", header.New())

	_, err := token.Append(func(b *jwt.Builder) {
		b.Payload.Set(claims.Subject, "lsafer")
	})
	require.ErrorIs(t, err, jwt.ErrInvalidPayload)
}

func TestFromCompact(t *testing.T) {
	inner, err := compact.DecodeJWS("eyJhbGciOiJub25lIn0.eyJzdWIiOiJsc2FmZXIifQ.")
	require.NoError(t, err)

	token := jwt.FromCompact(inner, header.New(header.Pair{Name: header.ContentType, Value: jwt.Type}))
	require.Equal(t, inner.String(), token.Payload())
	require.Equal(t, "JWT", token.Cty())

	_, ok := token.Claims()
	require.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := testToken(t)
	b := testToken(t)
	require.True(t, a.Equal(b))

	reordered := jwt.New(a.Payload(), header.New(
		header.Pair{Name: header.Algorithm, Value: jwa.RS256},
		header.Pair{Name: header.Type, Value: "jwt"},
	))
	require.False(t, a.Equal(reordered))

	require.False(t, a.Equal(jwt.New(`{"sub":"other"}`, a.Header())))
	require.False(t, a.Equal(nil))
}

func TestClaimAccessors(t *testing.T) {
	token := jwt.New(`{"iss":"cufy","aud":"api","exp":1700000000,"nbf":1600000000,"iat":1650000000,"jti":"abc","client_id":"cli"}`, header.New(
		header.Pair{Name: header.Encryption, Value: jwa.A128CBCHS256},
		header.Pair{Name: header.Zip, Value: jwa.DEF},
		header.Pair{Name: header.JWKSetURL, Value: "https://example.com/jwks"},
		header.Pair{Name: header.Critical, Value: []any{"exp"}},
	))

	iss, _ := token.Issuer()
	require.Equal(t, "cufy", iss)

	aud, _ := token.Audience()
	require.Equal(t, []string{"api"}, aud)

	exp, _ := token.ExpirationTime()
	require.Equal(t, int64(1700000000), exp.Unix())

	nbf, _ := token.NotBefore()
	require.Equal(t, int64(1600000000), nbf.Unix())

	iat, _ := token.IssuedAt()
	require.Equal(t, int64(1650000000), iat.Unix())

	jti, _ := token.JWTID()
	require.Equal(t, "abc", jti)

	clientID, _ := token.ClientID()
	require.Equal(t, "cli", clientID)

	require.Equal(t, "A128CBC-HS256", token.Enc())
	require.Equal(t, "DEF", token.Zip())
	require.Equal(t, "https://example.com/jwks", token.Jku())
	require.Equal(t, []string{"exp"}, token.Crit())

	_, ok := token.Subject()
	require.False(t, ok)
}

func TestValidate(t *testing.T) {
	now := time.Unix(1650000000, 0)
	clock := func() time.Time { return now }

	token := jwt.New(`{"iss":"cufy","aud":["api","web"],"exp":1700000000,"nbf":1600000000}`, header.New())

	tests := []struct {
		Name    string
		Token   *jwt.Token
		Options []jwt.ValidateOption
		Err     error
	}{
		{
			Name:    "valid",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(clock), jwt.WithAllowedIssuers("cufy"), jwt.WithAllowedAudiences("web")},
		},
		{
			Name:    "issuer not allowed",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(clock), jwt.WithAllowedIssuers("other")},
			Err:     jwt.ErrIssuerNotAllowed,
		},
		{
			Name:    "audience not allowed",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(clock), jwt.WithAllowedAudiences("other")},
			Err:     jwt.ErrAudienceMismatch,
		},
		{
			Name:    "expired",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(func() time.Time { return time.Unix(1800000000, 0) })},
			Err:     jwt.ErrExpired,
		},
		{
			Name:    "expired within leeway",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(func() time.Time { return time.Unix(1700000010, 0) }), jwt.WithLeeway(time.Minute)},
		},
		{
			Name:    "not yet valid",
			Token:   token,
			Options: []jwt.ValidateOption{jwt.WithClock(func() time.Time { return time.Unix(1500000000, 0) })},
			Err:     jwt.ErrNotYetValid,
		},
		{
			Name:  "not an object",
			Token: jwt.New("[]", header.New()),
			Err:   jwt.ErrInvalidPayload,
		},
		{
			Name:    "nbf out of range",
			Token:   jwt.New(`{"nbf":1e300}`, header.New()),
			Options: []jwt.ValidateOption{jwt.WithClock(clock)},
			Err:     jwt.ErrInvalidClaim,
		},
		{
			Name:    "exp out of range",
			Token:   jwt.New(`{"exp":1e300}`, header.New()),
			Options: []jwt.ValidateOption{jwt.WithClock(clock)},
			Err:     jwt.ErrInvalidClaim,
		},
		{
			Name:    "exp not a number",
			Token:   jwt.New(`{"exp":"tomorrow"}`, header.New()),
			Options: []jwt.ValidateOption{jwt.WithClock(clock)},
			Err:     jwt.ErrInvalidClaim,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			err := test.Token.Validate(test.Options...)
			if test.Err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.Err)
		})
	}

	require.False(t, token.Expired(clock))
	require.Error(t, token.Validate(jwt.WithClock(nil)))
	require.Error(t, token.Validate(jwt.WithLeeway(-time.Second)))
}

func TestHTTPAuthorizationHeader(t *testing.T) {
	jws, err := compact.DecodeJWS("a.b.c")
	require.NoError(t, err)

	r, err := http.NewRequest(http.MethodGet, "http://localhost", nil)
	require.NoError(t, err)

	_, err = jwt.FromHTTPAuthorizationHeader(r)
	require.Error(t, err)

	jwt.SetHTTPAuthorizationHeader(r, jws)
	require.Equal(t, "Bearer a.b.c", r.Header.Get("Authorization"))

	value, err := jwt.FromHTTPAuthorizationHeader(r)
	require.NoError(t, err)
	require.Equal(t, "a.b.c", value)

	r.Header.Set("Authorization", "Basic abc")
	_, err = jwt.FromHTTPAuthorizationHeader(r)
	require.Error(t, err)
}

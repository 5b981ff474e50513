package jwt

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cufyorg/jose/pkg/compact"
)

// FromHTTPAuthorizationHeader extracts a compact token string from the
// Authorization header of an HTTP request. If the Authorization header is
// not set, then an error is returned.
//
// # Warning
//
// This value needs to be verified or decrypted before it can be used safely.
func FromHTTPAuthorizationHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid authorization header format")
	}

	if strings.ToLower(parts[0]) != "bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}

// HTTPHeaderValue is a type that can be used as a value when setting
// an HTTP request header.
type HTTPHeaderValue interface {
	string | compact.JWS | compact.JWE
}

// SetHTTPAuthorizationHeader sets the Authorization header of an HTTP request
// to the given token. The token is prefixed with "Bearer ", as required by the
// HTTP Authorization header specification.
//
// https://tools.ietf.org/html/rfc6750#section-2.1
func SetHTTPAuthorizationHeader[T HTTPHeaderValue](r *http.Request, token T) {
	r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
}

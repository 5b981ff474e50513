// Package jwt models a decoded JSON Web Token: an ordered JOSE header and
// a payload, independent of how the token travels on the wire.
//
// Tokens are immutable. Use Build or a Builder to assemble a new token,
// and WithHeaders or Append to derive a modified copy.
package jwt

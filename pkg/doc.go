// Package jose implements JavaScript Object Signing and Encryption (JOSE) related functionality.
//
// Tokens are built with package jwt, keys are parsed with package provider
// and the operations themselves are run by package engine:
//
//	keys, err := provider.ParseSet(jwks)
//	...
//	token, err := jwt.Build(func(b *jwt.Builder) {
//		b.Header.Set(header.Algorithm, jwa.RS256)
//		b.Payload.Set(claims.Subject, "lsafer")
//	})
//	...
//	signed, err := engine.Sign(ctx, token, keys)
//
// Related RFCs:
//   - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515 JWS, JSON Web Signature
//   - RFC7516 https://datatracker.ietf.org/doc/html/rfc7516 JWE, JSON Web Encryption
//   - RFC7517 https://datatracker.ietf.org/doc/html/rfc7517 JWK, JSON Web Key
//   - RFC7518 https://datatracker.ietf.org/doc/html/rfc7518 JWA, JSON Web Algorithms
//   - RFC7519 https://datatracker.ietf.org/doc/html/rfc7519 JWT, JSON Web Token
//   - RFC7638 https://datatracker.ietf.org/doc/html/rfc7638 JWK Thumbprint
//
// Related Information:
//   - https://datatracker.ietf.org/wg/jose/charter/
package jose

// Package jwa names the JSON Web Algorithms (RFC 7518) and holds the
// algorithm policy: which algorithm a key defaults to, and which key
// types are compatible with which algorithms.
package jwa

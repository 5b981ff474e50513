// Command jose signs, verifies, encrypts, decrypts and inspects JSON Web
// Tokens, and generates and imports JSON Web Keys.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

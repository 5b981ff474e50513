package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cufyorg/jose/internal/jsonx"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/jwk/thumbprint"
	"github.com/cufyorg/jose/pkg/keyutil"
	"github.com/cufyorg/jose/pkg/provider"
	"github.com/spf13/cobra"
)

// keyFlags are the parameters of a key created by "key generate" or
// "key import".
type keyFlags struct {
	Use    string
	Alg    string
	Kid    string
	Ops    []string
	Public bool // print only the public parameters
	Set    bool // wrap the key in a JWK set
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Use, "use", "", "\"use\" parameter (sig or enc)")
	cmd.Flags().StringVar(&f.Alg, "alg", "", "\"alg\" parameter")
	cmd.Flags().StringVar(&f.Kid, "kid", "", "key ID, the key thumbprint when empty")
	cmd.Flags().StringSliceVar(&f.Ops, "ops", nil, "\"key_ops\" parameter")
	cmd.Flags().BoolVar(&f.Public, "public", false, "print only the public parameters")
	cmd.Flags().BoolVar(&f.Set, "set", false, "print a JWK set holding the key")
}

func (f *keyFlags) options() []provider.KeyOption {
	var opts []provider.KeyOption
	if f.Use != "" {
		opts = append(opts, provider.WithUse(f.Use))
	}
	if f.Alg != "" {
		opts = append(opts, provider.WithAlgorithm(f.Alg))
	}
	if f.Kid != "" {
		opts = append(opts, provider.WithKeyID(f.Kid))
	}
	if len(f.Ops) > 0 {
		opts = append(opts, provider.WithKeyOps(f.Ops...))
	}
	return opts
}

func (f *keyFlags) print(cmd *cobra.Command, key *provider.Key) error {
	var (
		b   []byte
		err error
	)

	switch {
	case f.Set && f.Public:
		b, err = jwk.NewSet(key).PublicJSON()
	case f.Set:
		b, err = jwk.NewSet(key).JSON()
	case f.Public:
		b, err = jsonx.Marshal(key.PublicParameters())
	default:
		b, err = jsonx.Marshal(key.Parameters())
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate, import and publish JSON Web Keys",
	}

	cmd.AddCommand(
		newKeyGenerateCmd(),
		newKeyImportCmd(),
		newKeyPublicCmd(),
	)

	return cmd
}

func newKeyGenerateCmd() *cobra.Command {
	var (
		flags keyFlags
		kty   string
		crv   string
		bits  int
		size  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			material, err := generateKey(kty, crv, bits, size)
			if err != nil {
				return err
			}

			key, err := provider.FromCrypto(material, flags.options()...)
			if err != nil {
				return err
			}

			return flags.print(cmd, key)
		},
	}

	cmd.Flags().StringVar(&kty, "kty", jwa.KeyTypeEC, "key type (RSA, EC, OKP or oct)")
	cmd.Flags().StringVar(&crv, "crv", keyutil.CurveP256, "curve of an EC key")
	cmd.Flags().IntVar(&bits, "bits", keyutil.DefaultRSAKeySize, "modulus size of an RSA key")
	cmd.Flags().IntVar(&size, "size", 32, "size in bytes of an oct key")
	flags.register(cmd)

	return cmd
}

func generateKey(kty, crv string, bits, size int) (any, error) {
	switch kty {
	case jwa.KeyTypeRSA:
		_, private, err := keyutil.NewRSAKeyPair(bits)
		return private, err
	case jwa.KeyTypeEC:
		_, private, err := keyutil.NewECDSAKeyPair(crv)
		return private, err
	case jwa.KeyTypeOKP:
		_, private, err := keyutil.NewEdDSAKeyPair()
		return private, err
	case jwa.KeyTypeOct:
		return keyutil.NewSymmetricKey(size)
	default:
		return nil, fmt.Errorf("unsupported key type %q", kty)
	}
}

func newKeyImportCmd() *cobra.Command {
	var flags keyFlags

	cmd := &cobra.Command{
		Use:   "import <pem-file>",
		Short: "Convert a PEM encoded key or certificate to a JWK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			material, err := readPEMKey(args[0])
			if err != nil {
				return err
			}

			key, err := provider.FromCrypto(material, flags.options()...)
			if err != nil {
				return err
			}

			return flags.print(cmd, key)
		},
	}

	flags.register(cmd)

	return cmd
}

// readPEMKey parses the private key in the named file, falling back to a
// public key or certificate.
func readPEMKey(name string) (any, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	privateKey, privateErr := keyutil.ParsePrivateKey(bytes.NewReader(b))
	if privateErr == nil {
		return privateKey, nil
	}

	publicKey, err := keyutil.ParsePublicKey(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s is neither a private nor a public key: %w", name, privateErr)
	}

	return publicKey, nil
}

func newKeyPublicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public <jwks-file>",
		Short: "Print the public keys of a JWK set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := readKeySet(args[0])
			if err != nil {
				return err
			}

			b, err := keys.PublicJSON()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func newThumbprintCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "thumbprint",
		Short: "Print the RFC 7638 thumbprint of every key of the key set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := global.loadKeys()
			if err != nil {
				return err
			}

			for _, key := range keys.Keys() {
				tp, err := thumbprint.Key(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key.Kid(), tp)
			}

			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cufyorg/jose/pkg/engine"
	"github.com/cufyorg/jose/pkg/jwk"
	"github.com/cufyorg/jose/pkg/provider"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalFlags are the flags shared by every command.
type globalFlags struct {
	Keys     string // JWK set file
	Insecure bool   // lift algorithm constraints
	Verbose  bool   // debug logging
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "jose",
		Short: "JSON Web Token toolkit",
		Long: `jose signs, verifies, encrypts and decrypts JSON Web Tokens with the keys
of a JWK set, and generates and imports JSON Web Keys.

Tokens and payloads are read from the first argument, or from standard input
when it is "-" or missing.

Examples:
  jose key generate --kty RSA --use sig --set > jwks.json
  echo '{"sub":"lsafer"}' | jose sign -k jwks.json
  jose verify -k jwks.json eyJ...`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.Keys, "keys", "k", "", "JWK set file")
	cmd.PersistentFlags().BoolVar(&flags.Insecure, "insecure", false, "do not enforce algorithm constraints")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "log key selection to standard error")

	cmd.AddCommand(
		newSignCmd(flags),
		newVerifyCmd(flags),
		newEncryptCmd(flags),
		newDecryptCmd(flags),
		newInspectCmd(),
		newThumbprintCmd(flags),
		newKeyCmd(),
	)

	return cmd
}

// newEngine returns the engine configured by the global flags.
func (f *globalFlags) newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	logger := zap.NewNop()
	if f.Verbose {
		logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(cmd.ErrOrStderr()),
			zapcore.DebugLevel,
		))
	}
	return engine.New(engine.WithLogger(logger))
}

// callOptions returns the per-call engine options of the global flags.
func (f *globalFlags) callOptions() []engine.CallOption {
	return []engine.CallOption{engine.WithConstraints(!f.Insecure)}
}

// loadKeys reads the JWK set named by the --keys flag.
func (f *globalFlags) loadKeys() (jwk.Set, error) {
	if f.Keys == "" {
		return jwk.Set{}, fmt.Errorf("no key set, use --keys")
	}
	return readKeySet(f.Keys)
}

func readKeySet(name string) (jwk.Set, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return jwk.Set{}, fmt.Errorf("failed to read key set: %w", err)
	}

	keys, err := provider.ParseSet(b)
	if err != nil {
		return jwk.Set{}, err
	}

	if err := keys.Validate(); err != nil {
		return jwk.Set{}, err
	}

	return keys, nil
}

// readInput returns the first argument, or standard input when it is "-"
// or missing. Surrounding whitespace is trimmed.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

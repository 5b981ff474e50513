package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cufyorg/jose/pkg/claims"
	"github.com/cufyorg/jose/pkg/compact"
	"github.com/cufyorg/jose/pkg/engine"
	"github.com/cufyorg/jose/pkg/header"
	"github.com/cufyorg/jose/pkg/jwa"
	"github.com/cufyorg/jose/pkg/jwt"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// headerFlags are the header parameters set from the command line.
type headerFlags struct {
	Typ    string
	Cty    string
	Alg    string
	Enc    string
	Zip    string
	Kid    string
	Params []string // name=value
}

func (f *headerFlags) register(cmd *cobra.Command, encryption bool) {
	cmd.Flags().StringVar(&f.Typ, "typ", "", "\"typ\" header parameter")
	cmd.Flags().StringVar(&f.Cty, "cty", "", "\"cty\" header parameter")
	cmd.Flags().StringVar(&f.Alg, "alg", "", "algorithm, inferred from the key when empty")
	cmd.Flags().StringVar(&f.Kid, "kid", "", "ID of the key to use")
	cmd.Flags().StringArrayVarP(&f.Params, "header", "H", nil, "extra header parameter as name=value")
	if encryption {
		cmd.Flags().StringVar(&f.Enc, "enc", "", "content encryption algorithm, one of "+strings.Join(jwa.ContentEncryptionAlgorithms(), ", "))
		cmd.Flags().StringVar(&f.Zip, "zip", "", "compression algorithm (DEF)")
	}
}

func (f *headerFlags) parameters() (header.Parameters, error) {
	h := header.New()

	for _, p := range []header.Pair{
		{Name: header.Type, Value: f.Typ},
		{Name: header.ContentType, Value: f.Cty},
		{Name: header.Algorithm, Value: f.Alg},
		{Name: header.Encryption, Value: f.Enc},
		{Name: header.Zip, Value: f.Zip},
		{Name: header.KeyID, Value: f.Kid},
	} {
		if p.Value != "" {
			h.Set(p.Name, p.Value)
		}
	}

	for _, param := range f.Params {
		name, value, ok := strings.Cut(param, "=")
		if !ok || name == "" {
			return header.Parameters{}, fmt.Errorf("invalid header parameter %q, want name=value", param)
		}
		h.Set(name, value)
	}

	return h, nil
}

// claimFlags stamp registered claims on a JSON object payload.
type claimFlags struct {
	JTI bool
	IAT bool
}

func (f *claimFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.JTI, "jti", false, "set \"jti\" to a random UUID")
	cmd.Flags().BoolVar(&f.IAT, "iat", false, "set \"iat\" to the current time")
}

func (f *claimFlags) stamp(token *jwt.Token, now time.Time) (*jwt.Token, error) {
	if !f.JTI && !f.IAT {
		return token, nil
	}
	return token.Append(func(b *jwt.Builder) {
		if f.JTI {
			b.Payload.Set(claims.JWTID, uuid.NewString())
		}
		if f.IAT {
			b.Payload.Set(claims.IssuedAt, now.Unix())
		}
	})
}

func newSignCmd(global *globalFlags) *cobra.Command {
	var (
		flags  headerFlags
		stamps claimFlags
	)

	cmd := &cobra.Command{
		Use:   "sign [payload]",
		Short: "Sign a payload and print the compact JWS",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			h, err := flags.parameters()
			if err != nil {
				return err
			}

			token, err := stamps.stamp(jwt.New(payload, h), time.Now())
			if err != nil {
				return err
			}

			keys, err := global.loadKeys()
			if err != nil {
				return err
			}

			e, err := global.newEngine(cmd)
			if err != nil {
				return err
			}

			signed, err := e.SignString(cmd.Context(), token, keys, global.callOptions()...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	flags.register(cmd, false)
	stamps.register(cmd)

	return cmd
}

func newVerifyCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [token]",
		Short: "Verify a compact JWS and print its payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			keys, err := global.loadKeys()
			if err != nil {
				return err
			}

			e, err := global.newEngine(cmd)
			if err != nil {
				return err
			}

			verified, err := e.VerifiedString(cmd.Context(), token, keys, global.callOptions()...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), verified.Payload())
			return nil
		},
	}
}

func newEncryptCmd(global *globalFlags) *cobra.Command {
	var flags headerFlags

	cmd := &cobra.Command{
		Use:   "encrypt [payload]",
		Short: "Encrypt a payload and print the compact JWE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			h, err := flags.parameters()
			if err != nil {
				return err
			}

			keys, err := global.loadKeys()
			if err != nil {
				return err
			}

			e, err := global.newEngine(cmd)
			if err != nil {
				return err
			}

			encrypted, err := e.EncryptString(cmd.Context(), jwt.New(payload, h), keys, global.callOptions()...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), encrypted)
			return nil
		},
	}

	flags.register(cmd, true)

	return cmd
}

func newDecryptCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [token]",
		Short: "Decrypt a compact JWE and print its payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			keys, err := global.loadKeys()
			if err != nil {
				return err
			}

			e, err := global.newEngine(cmd)
			if err != nil {
				return err
			}

			decrypted, err := e.DecryptString(cmd.Context(), token, keys, global.callOptions()...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), decrypted.Payload())
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [token]",
		Short: "Print the header and payload of a compact token without verifying it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			token, err := compact.Decode(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape: %s\n", token.Shape())

			var (
				h       header.Parameters
				payload *string
			)
			switch t := token.(type) {
			case compact.JWS:
				unverified, err := engine.Unverified(t)
				if err != nil {
					return err
				}
				h = unverified.Header()
				p := unverified.Payload()
				payload = &p
			case compact.JWE:
				var ok bool
				if h, ok = t.DecodedHeader(); !ok {
					return fmt.Errorf("%w: header is not a base64url encoded JSON object", compact.ErrMalformedToken)
				}
			}

			b, err := h.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "header: %s\n", b)
			if payload != nil {
				fmt.Fprintf(out, "payload: %s\n", *payload)
			}

			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/tagbook/internal/auth"
)

func tokenCmd() *cobra.Command {
	var (
		secret string
		issuer string
		id     string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		Long: `Print a signed HS256 bearer token carrying the given principal.
The API accepts it when started with the same JWT_SECRET and JWT_ISSUER.`,
		Example: "  tagctl token --id u1 --email ann@abccompany.com --ttl 1h",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			issuerSvc, err := auth.NewTokenIssuer([]byte(secret), issuer)
			if err != nil {
				return fmt.Errorf("secret not set (use --secret or JWT_SECRET): %w", err)
			}
			tok, err := issuerSvc.Issue(auth.Principal{ID: id, Email: email}, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "HMAC signing key (default $JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", os.Getenv("JWT_ISSUER"), "iss claim (default $JWT_ISSUER)")
	cmd.Flags().StringVar(&id, "id", "", "principal id (the id claim)")
	cmd.Flags().StringVar(&email, "email", "", "principal email")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

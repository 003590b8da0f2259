package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/Adithya-Monish-Kumar-K/namesearch/internal/auth/apikey"
	"github.com/Adithya-Monish-Kumar-K/namesearch/pkg/postgres"
	"github.com/spf13/cobra"
)

func newAPIKeyCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage API keys stored in PostgreSQL",
	}
	cmd.AddCommand(
		newAPIKeyCreateCmd(opts),
		newAPIKeyRevokeCmd(opts),
		newAPIKeyListCmd(opts),
	)
	return cmd
}

// withValidator connects to PostgreSQL, applies migrations and runs fn.
func withValidator(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, v *apikey.Validator) error) error {
	cfg, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	db, err := postgres.New(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	return fn(ctx, apikey.NewValidator(db))
}

func newAPIKeyCreateCmd(opts *rootOptions) *cobra.Command {
	var (
		name      string
		rateLimit int
		expiresIn time.Duration
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a key; the raw key is printed once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var expiresAt *time.Time
			if expiresIn > 0 {
				t := time.Now().Add(expiresIn)
				expiresAt = &t
			}
			return withValidator(cmd, opts, func(ctx context.Context, v *apikey.Validator) error {
				key, err := v.CreateKey(ctx, name, rateLimit, expiresAt)
				if err != nil {
					return fmt.Errorf("creating key: %w", err)
				}
				printCreated(cmd.OutOrStdout(), key, name, rateLimit, expiresAt)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name for the api key")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 100, "requests per rate limit window")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "expiry, e.g. 720h (default never)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func printCreated(w io.Writer, key, name string, rateLimit int, expiresAt *time.Time) {
	fmt.Fprintln(w, "API key created. Store it securely, it cannot be retrieved again.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Key:        %s\n", key)
	fmt.Fprintf(w, "  Name:       %s\n", name)
	fmt.Fprintf(w, "  Rate Limit: %d\n", rateLimit)
	fmt.Fprintf(w, "  Expires:    %s\n", formatExpiry(expiresAt))
}

func formatExpiry(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.RFC3339)
}

func newAPIKeyRevokeCmd(opts *rootOptions) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withValidator(cmd, opts, func(ctx context.Context, v *apikey.Validator) error {
				if err := v.RevokeKey(ctx, key); err != nil {
					return fmt.Errorf("revoking key: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "API key revoked.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "raw api key to revoke")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newAPIKeyListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withValidator(cmd, opts, func(ctx context.Context, v *apikey.Validator) error {
				keys, err := v.ListKeys(ctx)
				if err != nil {
					return fmt.Errorf("listing keys: %w", err)
				}
				printKeys(cmd.OutOrStdout(), keys)
				return nil
			})
		},
	}
}

func printKeys(w io.Writer, keys []apikey.KeyInfo) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "No active API keys.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRATE LIMIT\tEXPIRES")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", k.ID, k.Name, k.RateLimit, formatExpiry(k.ExpiresAt))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d active key(s)\n", len(keys))
}

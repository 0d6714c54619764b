package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abarbosa/extrato/internal/cli"
)

func merchantsCmd() *cobra.Command {
	var user string
	var slug string
	var limit int

	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "List a user's known merchants",
		Long: `Lists the merchants the classifier has learned for a user. With --slug,
shows the classified transaction history of one merchant instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if slug != "" {
				history, err := store.GetTransactionsByMerchant(ctx, user, slug)
				if err != nil {
					return fmt.Errorf("failed to load merchant history: %w", err)
				}
				if len(history) == 0 {
					fmt.Println(cli.SubtleStyle.Render("No transactions for " + slug + "."))
					return nil
				}

				var b strings.Builder
				for i := range history {
					t := &history[i]
					fmt.Fprintf(&b, "  %s  %9.2f  %-20s %s\n",
						t.Date.Format("2006-01-02"), t.Amount, t.Category, t.SourceTrail())
				}
				fmt.Println(cli.RenderBox(fmt.Sprintf("%s (%d transactions)", slug, len(history)), b.String()))
				return nil
			}

			merchants, err := store.GetMerchants(ctx, user, limit)
			if err != nil {
				return fmt.Errorf("failed to list merchants: %w", err)
			}

			if len(merchants) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No merchants yet. Classify a statement first."))
				return nil
			}

			var b strings.Builder
			for i := range merchants {
				m := &merchants[i]
				fmt.Fprintf(&b, "  %-30s %-18s uses: %d\n", m.CanonicalName, orDash(m.CNPJ), m.UseCount)
			}
			fmt.Println(cli.RenderBox(fmt.Sprintf("Merchants (%d)", len(merchants)), b.String()))

			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user identity (required)")
	cmd.Flags().StringVar(&slug, "slug", "", "show transaction history for one merchant slug")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum merchants to list (0 = all)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abarbosa/extrato/internal/cli"
	"github.com/abarbosa/extrato/internal/service"
)

type correctFlags struct {
	user     string
	pattern  string
	name     string
	category string
	cnpj     string
}

func correctCmd() *cobra.Command {
	flags := &correctFlags{}

	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Teach the classifier a merchant correction",
		Long: `Registers a correction rule: any future statement line containing the
pattern substring resolves to the given canonical merchant. Corrections
take precedence over the built-in dictionary.`,
		Example: `  extrato correct --user ana --pattern "pag*tonin" --name "Luiz Tonin" --category "Alimentação"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCorrect(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.user, "user", "", "user identity owning the rule (required)")
	cmd.Flags().StringVar(&flags.pattern, "pattern", "", "substring to match in the statement line (required)")
	cmd.Flags().StringVar(&flags.name, "name", "", "canonical merchant name (required)")
	cmd.Flags().StringVar(&flags.category, "category", "", "category to assign")
	cmd.Flags().StringVar(&flags.cnpj, "cnpj", "", "merchant CNPJ")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runCorrect(cmd *cobra.Command, flags *correctFlags) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng, err := buildEngine(store)
	if err != nil {
		return err
	}

	merchant, err := eng.SaveCorrection(ctx, flags.user, service.CorrectionRequest{
		Pattern:       flags.pattern,
		CanonicalName: flags.name,
		Category:      flags.category,
		CNPJ:          flags.cnpj,
	})
	if err != nil {
		return fmt.Errorf("failed to save correction: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(
		fmt.Sprintf("✓ Future lines matching %q will resolve to %s", flags.pattern, merchant.CanonicalName)))

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/abarbosa/extrato/internal/cli"
	"github.com/abarbosa/extrato/internal/model"
	"github.com/abarbosa/extrato/internal/ofx"
	"github.com/abarbosa/extrato/internal/service"
)

// classifyBatchSize bounds one storage round-trip; big statements are split
// so the progress bar moves and a failure points at a specific chunk.
const classifyBatchSize = 100

type classifyFlags struct {
	user     string
	jsonFile string
	ofxFile  string
}

// jsonRow mirrors the bank-export JSON convention also used by the HTTP API.
type jsonRow struct {
	Date        string   `json:"date"`
	Description string   `json:"descricao"`
	AccountID   string   `json:"conta_id"`
	Amount      *float64 `json:"valor"`
}

func classifyCmd() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a bank statement file",
		Long: `Reads statement rows from a JSON or OFX file, resolves each one to a
canonical merchant and category, and stores the results. Re-importing the
same file is safe: duplicate rows are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClassify(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.user, "user", "", "user identity owning the statement (required)")
	cmd.Flags().StringVar(&flags.jsonFile, "input", "", "JSON statement file")
	cmd.Flags().StringVar(&flags.ofxFile, "ofx", "", "OFX statement file")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runClassify(cmd *cobra.Command, flags *classifyFlags) error {
	ctx := cmd.Context()

	rows, err := loadRows(flags)
	if err != nil {
		return err
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng, err := buildEngine(store)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetDescription("Classifying transactions"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	total := &service.BatchResult{}
	for start := 0; start < len(rows); start += classifyBatchSize {
		end := start + classifyBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		result, err := eng.Classify(ctx, flags.user, rows[start:end])
		if err != nil {
			return fmt.Errorf("failed to classify rows %d-%d: %w", start, end-1, err)
		}

		total.Processed = append(total.Processed, result.Processed...)
		total.Inserted += result.Inserted
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	fmt.Println(cli.RenderSummary(total))

	return nil
}

// loadRows reads statement rows from whichever input flag was given.
func loadRows(flags *classifyFlags) ([]model.RawRow, error) {
	switch {
	case flags.jsonFile != "" && flags.ofxFile != "":
		return nil, fmt.Errorf("--input and --ofx are mutually exclusive")
	case flags.jsonFile != "":
		return loadJSONRows(flags.jsonFile)
	case flags.ofxFile != "":
		return loadOFXRows(flags.ofxFile)
	default:
		return nil, fmt.Errorf("either --input or --ofx is required")
	}
}

func loadJSONRows(path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var raw []jsonRow
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse statement file: %w", err)
	}

	rows := make([]model.RawRow, 0, len(raw))
	for i, r := range raw {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: date must be an ISO date: %w", i, err)
		}
		if r.Amount == nil {
			return nil, fmt.Errorf("row %d: valor is required", i)
		}
		rows = append(rows, model.RawRow{
			Date:        date,
			Description: r.Description,
			AccountID:   r.AccountID,
			Amount:      *r.Amount,
		})
	}

	return rows, nil
}

func loadOFXRows(path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OFX file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ofx.NewParser().ParseFile(f)
}

// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/abarbosa/extrato/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Merchant operations. UpsertMerchant is atomic on (user_id, slug):
	// concurrent batches introducing the same merchant get the same row.
	UpsertMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error)
	GetMerchants(ctx context.Context, userID string, limit int) ([]model.Merchant, error)

	// Correction rules.
	SaveCorrectionRule(ctx context.Context, rule *model.CorrectionRule) error
	GetCorrectionRules(ctx context.Context, userID string) ([]model.CorrectionRule, error)

	// Classified transactions. SaveTransactions reports how many rows were
	// actually inserted; duplicates (same dedupe hash) are skipped.
	SaveTransactions(ctx context.Context, userID string, txns []model.NormalizedTransaction) (int, error)
	GetTransactionsByMerchant(ctx context.Context, userID, slug string) ([]model.NormalizedTransaction, error)

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// CorrectionRequest is the user-correction side channel: a substring pattern
// taught to override future classifications.
type CorrectionRequest struct {
	Pattern       string
	CanonicalName string
	Category      string
	CNPJ          string
}

// BatchResult summarizes one batch classification run.
type BatchResult struct {
	Processed []model.NormalizedTransaction
	Inserted  int
}

// Classifier is the classification orchestrator consumed by the HTTP and CLI
// surfaces.
type Classifier interface {
	Classify(ctx context.Context, userID string, rows []model.RawRow) (*BatchResult, error)
	SaveCorrection(ctx context.Context, userID string, req CorrectionRequest) (*model.Merchant, error)
}

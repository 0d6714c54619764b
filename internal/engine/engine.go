// Package engine implements the classification orchestrator: it sequences
// the normalization, detection, dictionary, fuzzy and rule stages, tracks
// which stage produced the answer, and persists the results.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/abarbosa/extrato/internal/common"
	"github.com/abarbosa/extrato/internal/detect"
	"github.com/abarbosa/extrato/internal/dictionary"
	"github.com/abarbosa/extrato/internal/fuzzy"
	"github.com/abarbosa/extrato/internal/model"
	"github.com/abarbosa/extrato/internal/rules"
	"github.com/abarbosa/extrato/internal/service"
	"github.com/abarbosa/extrato/internal/txtnorm"
)

// highConfidence is the score at or above which the cascade stops consulting
// further identity sources. Category may still be refined past it.
const highConfidence = 0.95

// fallbackConfidence is assigned when no source produced a category.
const fallbackConfidence = 0.4

// correctionConfidence is the default score for user-taught rules.
const correctionConfidence = 0.98

// Engine orchestrates the classification cascade over a storage backend.
type Engine struct {
	storage service.Storage
	dict    *dictionary.Dictionary
	rules   *rules.Engine
	config  Config
}

// Config holds configuration options for the engine.
type Config struct {
	// KnownMerchantLimit bounds the fuzzy-resolver candidate set.
	KnownMerchantLimit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{KnownMerchantLimit: fuzzy.MaxCandidates}
}

// New creates a classification engine with the default configuration.
func New(storage service.Storage, dict *dictionary.Dictionary, ruleEngine *rules.Engine) *Engine {
	return NewWithConfig(storage, dict, ruleEngine, DefaultConfig())
}

// NewWithConfig creates a classification engine with custom configuration.
func NewWithConfig(storage service.Storage, dict *dictionary.Dictionary, ruleEngine *rules.Engine, config Config) *Engine {
	if config.KnownMerchantLimit <= 0 {
		config.KnownMerchantLimit = fuzzy.MaxCandidates
	}
	return &Engine{
		storage: storage,
		dict:    dict,
		rules:   ruleEngine,
		config:  config,
	}
}

// Classify runs the cascade over a batch of raw rows in input order. The
// per-user knowledge base (correction rules and known merchants) is loaded
// once at batch start; merchant rows are created on demand via upsert.
func (e *Engine) Classify(ctx context.Context, userID string, rows []model.RawRow) (*service.BatchResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.ErrUnauthorized
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	corrections, err := e.storage.GetCorrectionRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load correction rules: %w", err)
	}
	known, err := e.storage.GetMerchants(ctx, userID, e.config.KnownMerchantLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load known merchants: %w", err)
	}

	slog.Debug("Classifying batch",
		"user", userID,
		"rows", len(rows),
		"corrections", len(corrections),
		"known_merchants", len(known))

	processed := make([]model.NormalizedTransaction, 0, len(rows))
	for i := range rows {
		txn := e.classifyRow(&rows[i], corrections, known)

		if txn.MerchantSlug != "" {
			merchant, err := e.storage.UpsertMerchant(ctx, &model.Merchant{
				UserID:        userID,
				Slug:          txn.MerchantSlug,
				CanonicalName: txn.CanonicalName,
				CNPJ:          txn.CNPJ,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to upsert merchant %q: %w", txn.MerchantSlug, err)
			}
			txn.MerchantID = merchant.ID
		}

		processed = append(processed, txn)
	}

	inserted, err := e.storage.SaveTransactions(ctx, userID, processed)
	if err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	return &service.BatchResult{Processed: processed, Inserted: inserted}, nil
}

// classifyRow runs the pure part of the cascade for one row. It never fails:
// absence of a match ends in the fallback category.
func (e *Engine) classifyRow(row *model.RawRow, corrections []model.CorrectionRule, known []model.Merchant) model.NormalizedTransaction {
	txType := detect.Type(row.Description, row.Amount)
	merchantRaw := txtnorm.ExtractMerchant(row.Description, txType)
	merchantNorm := txtnorm.DisplayName(merchantRaw)
	normText := txtnorm.Normalize(row.Description)

	txn := model.NormalizedTransaction{
		Date:           row.Date,
		RawDescription: row.Description,
		MerchantRaw:    merchantRaw,
		MerchantNorm:   merchantNorm,
		MerchantSlug:   model.Slugify(merchantNorm),
		AccountID:      row.AccountID,
		Type:           txType,
		Nature:         model.NatureOf(txType, row.Amount),
		Amount:         row.Amount,
	}

	// User-taught rules come before the static dictionary.
	for i := range corrections {
		rule := &corrections[i]
		pattern := strings.ToLower(txtnorm.Deaccent(rule.Pattern))
		if pattern == "" || !strings.Contains(normText, pattern) {
			continue
		}
		txn.CanonicalName = rule.Canonical
		txn.CNPJ = rule.CNPJ
		if rule.Category != "" {
			txn.Category = rule.Category
		}
		txn.Confidence = math.Max(txn.Confidence, rule.Confidence)
		txn.Sources = append(txn.Sources, model.SourceDict)
		break
	}

	if txn.Confidence < highConfidence {
		if m := e.dict.Lookup(normText); m != nil {
			txn.CanonicalName = m.CanonicalName
			if m.Category != "" {
				txn.Category = m.Category
			}
			txn.Confidence = math.Max(txn.Confidence, m.Confidence)
			txn.Sources = appendSource(txn.Sources, model.SourceDict)
		}
	}

	if txn.Confidence < highConfidence {
		if res := fuzzy.Resolve(merchantNorm, known); res != nil {
			txn.CanonicalName = res.CanonicalName
			if res.CNPJ != "" {
				txn.CNPJ = res.CNPJ
			}
			txn.Confidence = math.Max(txn.Confidence, res.Score)
			txn.Sources = append(txn.Sources, model.SourceCNPJ)
			// CNAE refinement may overwrite the category; identity may not
			// change past the high-confidence bar, category may.
			if cat := fuzzy.CategoryForCNPJ(res.CNPJ); cat != "" {
				txn.Category = cat
			}
		}
	}

	if txn.Category == "" {
		if m := e.rules.Apply(merchantNorm); m != nil {
			txn.Category = m.Category
			txn.Confidence = math.Max(txn.Confidence, m.Confidence)
			txn.Sources = append(txn.Sources, model.SourceRule)
		}
	}

	if txn.Category == "" {
		txn.Category = dictionary.CategoryOther
		txn.Confidence = math.Max(txn.Confidence, fallbackConfidence)
		txn.Sources = append(txn.Sources, model.SourceFallback)
	}

	if txn.CanonicalName == "" {
		txn.CanonicalName = merchantNorm
	}

	return txn
}

// SaveCorrection registers a user correction: it ensures a merchant exists
// for the canonical name and appends a new correction rule. Past
// classifications are left untouched; only future runs see the rule.
func (e *Engine) SaveCorrection(ctx context.Context, userID string, req service.CorrectionRequest) (*model.Merchant, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, common.ErrUnauthorized
	}
	if strings.TrimSpace(req.Pattern) == "" {
		return nil, common.NewUserError("pattern_substring is required", nil)
	}
	if strings.TrimSpace(req.CanonicalName) == "" {
		return nil, common.NewUserError("nome_canonico is required", nil)
	}

	merchant, err := e.storage.UpsertMerchant(ctx, &model.Merchant{
		UserID:        userID,
		Slug:          model.Slugify(req.CanonicalName),
		CanonicalName: req.CanonicalName,
		CNPJ:          req.CNPJ,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert merchant: %w", err)
	}

	rule := &model.CorrectionRule{
		UserID:     userID,
		Pattern:    req.Pattern,
		MerchantID: merchant.ID,
		Canonical:  req.CanonicalName,
		Category:   req.Category,
		CNPJ:       req.CNPJ,
		Confidence: correctionConfidence,
	}
	if err := e.storage.SaveCorrectionRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save correction rule: %w", err)
	}

	slog.Info("Registered correction rule",
		"user", userID,
		"pattern", req.Pattern,
		"merchant", merchant.CanonicalName)

	return merchant, nil
}

// validateRows rejects malformed input before any classification runs, so a
// bad batch is never partially applied.
func validateRows(rows []model.RawRow) error {
	if len(rows) == 0 {
		return common.NewUserError("batch contains no rows", common.ErrInvalidRow)
	}
	for i := range rows {
		if strings.TrimSpace(rows[i].Description) == "" {
			return common.NewUserError(
				fmt.Sprintf("row %d: missing description", i), common.ErrInvalidRow)
		}
		if rows[i].Date.IsZero() {
			return common.NewUserError(
				fmt.Sprintf("row %d: missing date", i), common.ErrInvalidRow)
		}
		if math.IsNaN(rows[i].Amount) || math.IsInf(rows[i].Amount, 0) {
			return common.NewUserError(
				fmt.Sprintf("row %d: invalid amount", i), common.ErrInvalidRow)
		}
	}
	return nil
}

// appendSource appends a stage name unless it is already the last entry,
// keeping the trail readable when corrections and dictionary both fire.
func appendSource(sources []string, name string) []string {
	if len(sources) > 0 && sources[len(sources)-1] == name {
		return sources
	}
	return append(sources, name)
}

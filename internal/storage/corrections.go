package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abarbosa/extrato/internal/model"
)

// SaveCorrectionRule appends a user-taught substring rule. Rules are
// additive: corrections never rewrite classification history.
func (s *SQLiteStorage) SaveCorrectionRule(ctx context.Context, rule *model.CorrectionRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCorrectionRule(rule); err != nil {
		return err
	}

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO correction_rules
			(id, user_id, pattern, merchant_id, canonical_name, category, cnpj, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)
	`, rule.ID, rule.UserID, rule.Pattern, rule.MerchantID, rule.Canonical,
		rule.Category, rule.CNPJ, rule.Confidence, rule.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save correction rule: %w", err)
	}

	return nil
}

// GetCorrectionRules retrieves all correction rules for a user, newest first
// so the most recent teaching wins on overlapping patterns.
func (s *SQLiteStorage) GetCorrectionRules(ctx context.Context, userID string) ([]model.CorrectionRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, pattern, merchant_id, canonical_name,
			COALESCE(category, ''), COALESCE(cnpj, ''), confidence, created_at
		FROM correction_rules
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query correction rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.CorrectionRule
	for rows.Next() {
		var r model.CorrectionRule
		if err := rows.Scan(&r.ID, &r.UserID, &r.Pattern, &r.MerchantID, &r.Canonical,
			&r.Category, &r.CNPJ, &r.Confidence, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan correction rule: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abarbosa/extrato/internal/model"
)

// SaveTransactions inserts classified transactions in one database
// transaction and reports how many rows were actually written. Rows whose
// dedupe hash already exists are skipped, making re-imports idempotent.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, userID string, txns []model.NormalizedTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(id, hash, user_id, date, raw_description, merchant_raw, merchant_norm,
			 merchant_slug, merchant_id, canonical_name, category, cnpj, account_id,
			 tx_type, nature, amount, confidence, sources)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, NULLIF(?, ''), ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range txns {
		t := &txns[i]
		if t.ID == "" {
			t.ID = uuid.NewString()
		}

		res, err := stmt.ExecContext(ctx,
			t.ID, t.GenerateHash(), userID, t.Date, t.RawDescription,
			t.MerchantRaw, t.MerchantNorm, t.MerchantSlug, t.MerchantID,
			t.CanonicalName, t.Category, t.CNPJ, t.AccountID,
			string(t.Type), string(t.Nature), t.Amount, t.Confidence,
			t.SourceTrail())
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}

	return inserted, nil
}

// GetTransactionsByMerchant retrieves a user's classified transactions for
// one merchant slug, newest first.
func (s *SQLiteStorage) GetTransactionsByMerchant(ctx context.Context, userID, slug string) ([]model.NormalizedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(slug, "slug"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, raw_description, merchant_raw, merchant_norm, merchant_slug,
			COALESCE(merchant_id, ''), canonical_name, category, COALESCE(cnpj, ''),
			COALESCE(account_id, ''), tx_type, nature, amount, confidence, sources
		FROM transactions
		WHERE user_id = ? AND merchant_slug = ?
		ORDER BY date DESC, id
	`, userID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.NormalizedTransaction
	for rows.Next() {
		var t model.NormalizedTransaction
		var txType, nature, sources string
		if err := rows.Scan(&t.ID, &t.Date, &t.RawDescription, &t.MerchantRaw,
			&t.MerchantNorm, &t.MerchantSlug, &t.MerchantID, &t.CanonicalName,
			&t.Category, &t.CNPJ, &t.AccountID, &txType, &nature,
			&t.Amount, &t.Confidence, &sources); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Type = model.TransactionType(txType)
		t.Nature = model.Nature(nature)
		if sources != "" {
			t.Sources = strings.Split(sources, ">")
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

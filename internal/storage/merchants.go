package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abarbosa/extrato/internal/model"
)

// UpsertMerchant inserts a merchant keyed by (user_id, slug) or, when the
// slug already exists for that user, bumps its use count and returns the
// existing row. The single INSERT ... ON CONFLICT closes the
// look-up-then-insert race between concurrent batches for the same user.
func (s *SQLiteStorage) UpsertMerchant(ctx context.Context, merchant *model.Merchant) (*model.Merchant, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMerchant(merchant); err != nil {
		return nil, err
	}

	if merchant.ID == "" {
		merchant.ID = uuid.NewString()
	}
	if merchant.CreatedAt.IsZero() {
		merchant.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO merchants (id, user_id, slug, canonical_name, cnpj, use_count, created_at)
		VALUES (?, ?, ?, ?, NULLIF(?, ''), 1, ?)
		ON CONFLICT(user_id, slug) DO UPDATE SET
			use_count = use_count + 1,
			cnpj = COALESCE(merchants.cnpj, NULLIF(excluded.cnpj, ''))
	`, merchant.ID, merchant.UserID, merchant.Slug, merchant.CanonicalName,
		merchant.CNPJ, merchant.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert merchant: %w", err)
	}

	return s.getMerchantBySlugTx(ctx, s.db, merchant.UserID, merchant.Slug)
}

// GetMerchants retrieves the user's known merchants, most recently created
// first, bounded by limit (0 means no bound).
func (s *SQLiteStorage) GetMerchants(ctx context.Context, userID string, limit int) ([]model.Merchant, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, slug, canonical_name, COALESCE(cnpj, ''), use_count, created_at
		FROM merchants
		WHERE user_id = ?
		ORDER BY created_at DESC, id`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var merchants []model.Merchant
	for rows.Next() {
		var m model.Merchant
		if err := rows.Scan(&m.ID, &m.UserID, &m.Slug, &m.CanonicalName,
			&m.CNPJ, &m.UseCount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}

	return merchants, rows.Err()
}

func (s *SQLiteStorage) getMerchantBySlugTx(ctx context.Context, q queryable, userID, slug string) (*model.Merchant, error) {
	var m model.Merchant
	err := q.QueryRowContext(ctx, `
		SELECT id, user_id, slug, canonical_name, COALESCE(cnpj, ''), use_count, created_at
		FROM merchants
		WHERE user_id = ? AND slug = ?
	`, userID, slug).Scan(&m.ID, &m.UserID, &m.Slug, &m.CanonicalName,
		&m.CNPJ, &m.UseCount, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &m, nil
}

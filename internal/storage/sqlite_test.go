package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarbosa/extrato/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestUpsertMerchantCreatesThenReuses(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID:        "ana",
		Slug:          "luiz-tonin",
		CanonicalName: "Luiz Tonin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 1, first.UseCount)

	second, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID:        "ana",
		Slug:          "luiz-tonin",
		CanonicalName: "Luiz Tonin",
		CNPJ:          "45543915000177",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (user, slug) must resolve to one row")
	assert.Equal(t, 2, second.UseCount)
	assert.Equal(t, "45543915000177", second.CNPJ, "a later CNPJ fills the empty column")

	third, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID:        "ana",
		Slug:          "luiz-tonin",
		CanonicalName: "Luiz Tonin",
		CNPJ:          "99999999000199",
	})
	require.NoError(t, err)
	assert.Equal(t, "45543915000177", third.CNPJ, "an existing CNPJ is never overwritten")
}

func TestUpsertMerchantIsolatesUsers(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	forAna, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID: "ana", Slug: "ifood", CanonicalName: "iFood",
	})
	require.NoError(t, err)

	forBeto, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID: "beto", Slug: "ifood", CanonicalName: "iFood",
	})
	require.NoError(t, err)

	assert.NotEqual(t, forAna.ID, forBeto.ID)

	anaMerchants, err := store.GetMerchants(ctx, "ana", 0)
	require.NoError(t, err)
	assert.Len(t, anaMerchants, 1)
}

func TestGetMerchantsLimit(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c"} {
		_, err := store.UpsertMerchant(ctx, &model.Merchant{
			UserID: "ana", Slug: slug, CanonicalName: slug,
		})
		require.NoError(t, err)
	}

	limited, err := store.GetMerchants(ctx, "ana", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := store.GetMerchants(ctx, "ana", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpsertMerchantValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.UpsertMerchant(ctx, nil)
	assert.ErrorIs(t, err, ErrNilParameter)

	_, err = store.UpsertMerchant(ctx, &model.Merchant{Slug: "x", CanonicalName: "X"})
	assert.ErrorIs(t, err, ErrInvalidMerchant)

	_, err = store.UpsertMerchant(ctx, &model.Merchant{UserID: "ana", CanonicalName: "X"})
	assert.ErrorIs(t, err, ErrInvalidMerchant)
}

func TestCorrectionRulesRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	merchant, err := store.UpsertMerchant(ctx, &model.Merchant{
		UserID: "ana", Slug: "luiz-tonin", CanonicalName: "Luiz Tonin",
	})
	require.NoError(t, err)

	older := &model.CorrectionRule{
		UserID:     "ana",
		Pattern:    "tonin",
		MerchantID: merchant.ID,
		Canonical:  "Luiz Tonin",
		Category:   "Alimentação",
		Confidence: 0.98,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, store.SaveCorrectionRule(ctx, older))

	newer := &model.CorrectionRule{
		UserID:     "ana",
		Pattern:    "pag*tonin",
		MerchantID: merchant.ID,
		Canonical:  "Luiz Tonin",
		Confidence: 0.98,
	}
	require.NoError(t, store.SaveCorrectionRule(ctx, newer))

	rules, err := store.GetCorrectionRules(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "pag*tonin", rules[0].Pattern, "newest rule comes first")
	assert.Equal(t, "tonin", rules[1].Pattern)
	assert.Equal(t, "Alimentação", rules[1].Category)
	assert.Empty(t, rules[0].Category)

	other, err := store.GetCorrectionRules(ctx, "beto")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSaveCorrectionRuleValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveCorrectionRule(ctx, nil), ErrNilParameter)
	assert.ErrorIs(t, store.SaveCorrectionRule(ctx, &model.CorrectionRule{
		UserID: "ana", Pattern: "x", MerchantID: "m1", Confidence: 1.5,
	}), ErrInvalidCorrection)
}

func testTransaction(desc string, amount float64) model.NormalizedTransaction {
	return model.NormalizedTransaction{
		Date:           time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		RawDescription: desc,
		MerchantRaw:    "SUPERMERCADO TONIN LTDA",
		MerchantNorm:   "Supermercado Tonin Ltda",
		MerchantSlug:   "supermercado-tonin-ltda",
		CanonicalName:  "Luiz Tonin",
		Category:       "Alimentação",
		AccountID:      "acc-1",
		Type:           model.TypeCardPurchase,
		Nature:         model.NatureOutflow,
		Sources:        []string{model.SourceDict},
		Amount:         amount,
		Confidence:     0.95,
	}
}

func TestSaveTransactionsDeduplicates(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	batch := []model.NormalizedTransaction{
		testTransaction("COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 1234", -187.45),
		testTransaction("COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 5678", -42.00),
	}

	inserted, err := store.SaveTransactions(ctx, "ana", batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Re-importing the same statement writes nothing new.
	again := []model.NormalizedTransaction{
		testTransaction("COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 1234", -187.45),
	}
	inserted, err = store.SaveTransactions(ctx, "ana", again)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestGetTransactionsByMerchant(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 1234", -187.45)
	txn.Sources = []string{model.SourceCNPJ, model.SourceRule}

	_, err := store.SaveTransactions(ctx, "ana", []model.NormalizedTransaction{txn})
	require.NoError(t, err)

	history, err := store.GetTransactionsByMerchant(ctx, "ana", "supermercado-tonin-ltda")
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, "Luiz Tonin", got.CanonicalName)
	assert.Equal(t, model.TypeCardPurchase, got.Type)
	assert.Equal(t, model.NatureOutflow, got.Nature)
	assert.Equal(t, []string{model.SourceCNPJ, model.SourceRule}, got.Sources)
	assert.InDelta(t, -187.45, got.Amount, 1e-9)

	none, err := store.GetTransactionsByMerchant(ctx, "ana", "other-slug")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveTransactionsEmptyBatch(t *testing.T) {
	store := newTestStorage(t)

	inserted, err := store.SaveTransactions(context.Background(), "ana", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

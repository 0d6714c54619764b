package fuzzy

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarbosa/extrato/internal/model"
)

func TestResolveAcceptsAboveThreshold(t *testing.T) {
	known := []model.Merchant{
		{ID: "m1", CanonicalName: "Duane", CNPJ: "12345678000199"},
	}

	// DWAYNE vs DUANE scores ~0.84, above the 0.82 bar.
	res := Resolve("Dwayne", known)
	require.NotNil(t, res)
	assert.Equal(t, "m1", res.MerchantID)
	assert.Equal(t, "Duane", res.CanonicalName)
	assert.Equal(t, "12345678000199", res.CNPJ)
	assert.GreaterOrEqual(t, res.Score, AcceptThreshold)
}

func TestAcceptanceBoundaryIsInclusive(t *testing.T) {
	// No string pair lands exactly on 0.82 in floating point, so the bar is
	// pinned directly: the threshold itself qualifies, the next value below
	// it does not.
	assert.True(t, accepted(AcceptThreshold))
	assert.True(t, accepted(1.0))
	assert.False(t, accepted(math.Nextafter(AcceptThreshold, 0)))
}

func TestResolveRejectsBelowThreshold(t *testing.T) {
	known := []model.Merchant{
		{ID: "m1", CanonicalName: "Dicksonx"},
	}

	// DIXON vs DICKSONX scores ~0.813, just under the bar.
	assert.Nil(t, Resolve("Dixon", known))
}

func TestResolveExactMatch(t *testing.T) {
	known := []model.Merchant{
		{ID: "m1", CanonicalName: "Supermercado Tomin"},
		{ID: "m2", CanonicalName: "Supermercado Tonin"},
	}

	res := Resolve("supermercado tonin", known)
	require.NotNil(t, res)
	assert.Equal(t, "m2", res.MerchantID)
	assert.InDelta(t, 1.0, res.Score, 1e-12)
}

func TestResolveEmptyInputs(t *testing.T) {
	known := []model.Merchant{{ID: "m1", CanonicalName: "Acme"}}

	assert.Nil(t, Resolve("", known))
	assert.Nil(t, Resolve("   ", known))
	assert.Nil(t, Resolve("Acme", nil))
}

func TestResolveBoundsCandidates(t *testing.T) {
	known := make([]model.Merchant, 0, MaxCandidates+1)
	for i := 0; i < MaxCandidates; i++ {
		known = append(known, model.Merchant{
			ID:            fmt.Sprintf("m%d", i),
			CanonicalName: fmt.Sprintf("Unrelated Merchant %d", i),
		})
	}
	// The only exact match sits past the candidate cap and must not be seen.
	known = append(known, model.Merchant{ID: "late", CanonicalName: "Zzyzx Comercio"})

	assert.Nil(t, Resolve("Zzyzx Comercio", known))
}

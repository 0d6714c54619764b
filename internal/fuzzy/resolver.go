package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/abarbosa/extrato/internal/model"
)

// AcceptThreshold is the minimum Jaro-Winkler score at which a candidate is
// considered the same merchant. Inclusive: a score of exactly 0.82 matches.
const AcceptThreshold = 0.82

// MaxCandidates bounds how many known merchants are compared per lookup.
const MaxCandidates = 200

// Result is an accepted fuzzy match against a known merchant.
type Result struct {
	MerchantID    string
	CanonicalName string
	CNPJ          string
	Score         float64
}

// Resolve compares an extracted merchant name against the user's known
// merchants and returns the best candidate at or above AcceptThreshold, or
// nil when none qualifies. Comparison is done upper-cased. Ties on score are
// broken by edit distance so results are deterministic.
func Resolve(merchantNorm string, known []model.Merchant) *Result {
	name := strings.ToUpper(strings.TrimSpace(merchantNorm))
	if name == "" || len(known) == 0 {
		return nil
	}

	if len(known) > MaxCandidates {
		known = known[:MaxCandidates]
	}

	var best *Result
	bestDist := 0
	for i := range known {
		candidate := strings.ToUpper(known[i].CanonicalName)
		score := JaroWinkler(name, candidate)
		if !accepted(score) {
			continue
		}
		dist := levenshtein.ComputeDistance(name, candidate)
		if best == nil || score > best.Score || (score == best.Score && dist < bestDist) {
			best = &Result{
				MerchantID:    known[i].ID,
				CanonicalName: known[i].CanonicalName,
				CNPJ:          known[i].CNPJ,
				Score:         score,
			}
			bestDist = dist
		}
	}
	return best
}

// accepted reports whether a similarity score qualifies as the same merchant.
// The bar is inclusive: exactly AcceptThreshold matches.
func accepted(score float64) bool {
	return score >= AcceptThreshold
}

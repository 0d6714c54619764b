// Package detect classifies statement lines into a closed set of
// payment/transfer types.
package detect

import (
	"strings"

	"github.com/abarbosa/extrato/internal/model"
	"github.com/abarbosa/extrato/internal/txtnorm"
)

// typeRule pairs a predicate over (upper-cased text, signed amount) with the
// type it implies. Rules are evaluated in order; the first match wins, which
// keeps the precedence visible and independently testable.
type typeRule struct {
	matches func(text string, amount float64) bool
	txType  model.TransactionType
}

func containsAny(text string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

var typeRules = []typeRule{
	{
		matches: func(t string, amt float64) bool {
			return strings.Contains(t, "PAGAMENTO PIX") && amt < 0
		},
		txType: model.TypePixDebit,
	},
	{
		matches: func(t string, amt float64) bool {
			return containsAny(t, "RECEBIMENTO PIX", "PIX CRED") && amt > 0
		},
		txType: model.TypePixCredit,
	},
	{
		matches: func(t string, _ float64) bool {
			return containsAny(t, "COMPRAS NACIONAIS", "COMPRA")
		},
		txType: model.TypeCardPurchase,
	},
	{
		matches: func(t string, amt float64) bool {
			return containsAny(t, "TRANSFERENCIA", "TED", "DOC") && amt < 0
		},
		txType: model.TypeTransferOut,
	},
	{
		matches: func(t string, amt float64) bool {
			return containsAny(t, "TRANSFERENCIA", "TED", "DOC") && amt > 0
		},
		txType: model.TypeTransferIn,
	},
	{
		matches: func(t string, _ float64) bool {
			return strings.Contains(t, "BOLETO")
		},
		txType: model.TypeBoleto,
	},
	{
		matches: func(t string, _ float64) bool {
			return containsAny(t, "TARIFA", "PACOTE", "MENSALIDADE")
		},
		txType: model.TypeFee,
	},
}

// Type classifies a raw description and signed amount. Total: any input maps
// to one of the eight types, defaulting to OTHER.
func Type(description string, amount float64) model.TransactionType {
	text := strings.ToUpper(txtnorm.Deaccent(description))

	for _, rule := range typeRules {
		if rule.matches(text, amount) {
			return rule.txType
		}
	}
	return model.TypeOther
}

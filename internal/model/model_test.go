package model

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "accented words", input: "São João Pães", want: "sao-joao-paes"},
		{name: "plain two words", input: "Luiz Tonin", want: "luiz-tonin"},
		{name: "surrounding whitespace", input: "  Supermercado Tonin ", want: "supermercado-tonin"},
		{name: "punctuation collapses", input: "McDonald's - Centro", want: "mcdonald-s-centro"},
		{name: "digits kept", input: "99 Tecnologia", want: "99-tecnologia"},
		{name: "only symbols", input: "$$$", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNatureOf(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		amount float64
		want   Nature
	}{
		{name: "pix credit is inflow", txType: TypePixCredit, amount: 50, want: NatureInflow},
		{name: "transfer in is inflow", txType: TypeTransferIn, amount: 1200, want: NatureInflow},
		{name: "pix debit is outflow", txType: TypePixDebit, amount: -50, want: NatureOutflow},
		{name: "card purchase is outflow", txType: TypeCardPurchase, amount: -187.45, want: NatureOutflow},
		{name: "card refund is inflow", txType: TypeCardPurchase, amount: 187.45, want: NatureInflow},
		{name: "zero-amount card line is neutral", txType: TypeCardPurchase, amount: 0, want: NatureNeutral},
		{name: "transfer out is outflow", txType: TypeTransferOut, amount: -300, want: NatureOutflow},
		{name: "fee follows negative amount", txType: TypeFee, amount: -12.9, want: NatureOutflow},
		{name: "other follows positive amount", txType: TypeOther, amount: 10, want: NatureInflow},
		{name: "other with zero amount is neutral", txType: TypeOther, amount: 0, want: NatureNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NatureOf(tt.txType, tt.amount); got != tt.want {
				t.Errorf("NatureOf(%s, %v) = %s, want %s", tt.txType, tt.amount, got, tt.want)
			}
		})
	}
}

func TestGenerateHash(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	base := NormalizedTransaction{
		Date:           date,
		RawDescription: "PAGAMENTO PIX 00012345 JOAO DA SILVA",
		AccountID:      "acc-1",
		Amount:         -50,
	}

	same := base
	if base.GenerateHash() != same.GenerateHash() {
		t.Error("identical transactions should hash identically")
	}

	differentAmount := base
	differentAmount.Amount = -50.01
	if base.GenerateHash() == differentAmount.GenerateHash() {
		t.Error("amount change should change the hash")
	}

	differentAccount := base
	differentAccount.AccountID = "acc-2"
	if base.GenerateHash() == differentAccount.GenerateHash() {
		t.Error("account change should change the hash")
	}

	// Classification output does not participate in identity: re-running the
	// cascade with a better dictionary must not create duplicates.
	reclassified := base
	reclassified.Category = "Alimentação"
	reclassified.Confidence = 0.95
	if base.GenerateHash() != reclassified.GenerateHash() {
		t.Error("classification fields should not affect the hash")
	}
}

func TestSourceTrail(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{name: "empty", sources: nil, want: ""},
		{name: "single stage", sources: []string{SourceDict}, want: "dict"},
		{name: "two stages", sources: []string{SourceCNPJ, SourceRule}, want: "cnpj>rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := NormalizedTransaction{Sources: tt.sources}
			if got := txn.SourceTrail(); got != tt.want {
				t.Errorf("SourceTrail() = %q, want %q", got, tt.want)
			}
		})
	}
}

package txtnorm

import (
	"testing"

	"github.com/abarbosa/extrato/internal/model"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name        string
		description string
		txType      model.TransactionType
		want        string
	}{
		{
			name:        "card purchase keeps merchant with legal suffix",
			description: "COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 1234",
			txType:      model.TypeCardPurchase,
			want:        "SUPERMERCADO TONIN LTDA",
		},
		{
			name:        "pix payment strips rail and code",
			description: "PAGAMENTO PIX 00012345 JOAO DA SILVA",
			txType:      model.TypePixDebit,
			want:        "JOAO DA SILVA",
		},
		{
			name:        "pix leftover leading digits removed",
			description: "RECEBIMENTO PIX 987654321 12 ACME COMERCIO",
			txType:      model.TypePixCredit,
			want:        "ACME COMERCIO",
		},
		{
			name:        "amount removed",
			description: "POSTO SHELL -35,50",
			txType:      model.TypeOther,
			want:        "POSTO SHELL",
		},
		{
			name:        "boilerplate-only line yields empty",
			description: "COMPRA CARTAO DEB 1234",
			txType:      model.TypeCardPurchase,
			want:        "",
		},
		{
			name:        "long tax id removed",
			description: "TRANSFERENCIA 12345678000199 ACME SERVICOS",
			txType:      model.TypeTransferOut,
			want:        "ACME SERVICOS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMerchant(tt.description, tt.txType); got != tt.want {
				t.Errorf("ExtractMerchant(%q, %s) = %q, want %q",
					tt.description, tt.txType, got, tt.want)
			}
		})
	}
}

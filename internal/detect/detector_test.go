package detect

import (
	"testing"

	"github.com/abarbosa/extrato/internal/model"
)

func TestType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      float64
		want        model.TransactionType
	}{
		{
			name:        "pix payment with negative amount",
			description: "PAGAMENTO PIX 00012345 JOAO DA SILVA",
			amount:      -50,
			want:        model.TypePixDebit,
		},
		{
			name:        "pix payment with positive amount is not a debit",
			description: "PAGAMENTO PIX 00012345 JOAO DA SILVA",
			amount:      50,
			want:        model.TypeOther,
		},
		{
			name:        "pix received",
			description: "RECEBIMENTO PIX 111 EMPRESA X",
			amount:      100,
			want:        model.TypePixCredit,
		},
		{
			name:        "pix credit shorthand",
			description: "PIX CRED FULANO DE TAL",
			amount:      10,
			want:        model.TypePixCredit,
		},
		{
			name:        "national card purchase",
			description: "COMPRAS NACIONAIS SUPERMERCADO TONIN LTDA 1234",
			amount:      -187.45,
			want:        model.TypeCardPurchase,
		},
		{
			name:        "card purchase shorthand",
			description: "COMPRA CARTAO POSTO SHELL",
			amount:      -35.5,
			want:        model.TypeCardPurchase,
		},
		{
			name:        "ted received",
			description: "TED RECEBIDA EMPRESA X",
			amount:      1500,
			want:        model.TypeTransferIn,
		},
		{
			name:        "accented transfer out",
			description: "TRANSFERÊNCIA ENVIADA MARIA",
			amount:      -300,
			want:        model.TypeTransferOut,
		},
		{
			name:        "boleto payment",
			description: "PAGAMENTO BOLETO ENERGIA",
			amount:      -220,
			want:        model.TypeBoleto,
		},
		{
			name:        "account fee",
			description: "TARIFA PACOTE SERVICOS",
			amount:      -35,
			want:        model.TypeFee,
		},
		{
			name:        "monthly fee",
			description: "MENSALIDADE CLUBE",
			amount:      -90,
			want:        model.TypeFee,
		},
		{
			name:        "cash deposit falls through",
			description: "DEPOSITO DINHEIRO",
			amount:      200,
			want:        model.TypeOther,
		},
		{
			name:        "empty line",
			description: "",
			amount:      0,
			want:        model.TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Type(tt.description, tt.amount); got != tt.want {
				t.Errorf("Type(%q, %v) = %s, want %s", tt.description, tt.amount, got, tt.want)
			}
		})
	}
}

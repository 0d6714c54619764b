package txtnorm

import (
	"regexp"
	"strings"

	"github.com/abarbosa/extrato/internal/model"
)

// Extraction removes everything from a description that is provably not part
// of the counterparty name: amounts first, then rail boilerplate, then codes.
var (
	moneyRe     = regexp.MustCompile(`(?i)(r\$\s*|[-+]\s?)\d+[.,]\d{2}\b`)
	pixNoiseRe  = regexp.MustCompile(`(?i)\b(pagamento|recebimento)\s+pix(\s+\d+)?\b`)
	railNoiseRe = regexp.MustCompile(`(?i)\b(pix\s+(deb|cred)|compras\s+nacionais|compra\s+cartao|cartao\s+(credito|debito)|transferencia|boleto)\b`)
	jargonRe    = regexp.MustCompile(`(?i)\b(dbr|veo\d*|vec\d*|aut\d+|nsu\d+|deb(ito)?|cred(ito)?)\b`)
	taxIDRe     = regexp.MustCompile(`\d{10,}`)
	codeRe      = regexp.MustCompile(`\b\d{4,8}\b`)
	dashRe      = regexp.MustCompile(`[\x{2013}\x{2014}]`) // en/em dash
	leadDigits  = regexp.MustCompile(`^\d+\s*`)
)

// ExtractMerchant isolates the substring of a raw description most likely to
// be the merchant or counterparty name. May return an empty string when the
// line is nothing but boilerplate.
func ExtractMerchant(description string, txType model.TransactionType) string {
	s := Deaccent(description)

	s = moneyRe.ReplaceAllString(s, " ")
	s = pixNoiseRe.ReplaceAllString(s, " ")
	s = railNoiseRe.ReplaceAllString(s, " ")
	s = jargonRe.ReplaceAllString(s, " ")
	s = taxIDRe.ReplaceAllString(s, " ")
	s = codeRe.ReplaceAllString(s, " ")
	s = dashRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))

	// PIX lines carry a leading transaction code once the rail words are gone.
	if txType == model.TypePixDebit || txType == model.TypePixCredit {
		s = strings.TrimSpace(leadDigits.ReplaceAllString(s, ""))
	}

	return s
}

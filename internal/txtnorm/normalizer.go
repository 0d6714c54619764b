// Package txtnorm cleans raw Brazilian bank-statement descriptions into
// comparable text and isolates the merchant/counterparty substring.
package txtnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// bankPrefixes are boilerplate phrases banks prepend to statement lines.
// Tried in order; the first match is stripped and the rest of the line kept.
var bankPrefixes = []string{
	"pagamento pix",
	"recebimento pix",
	"pix deb",
	"pix cred",
	"compras nacionais",
	"compra cartao",
	"cartao credito",
	"cartao debito",
	"ted",
	"doc",
	"transferencia",
	"saque",
	"deposito",
}

// legalSuffixes are corporate-entity markers anchored at the end of a name.
var legalSuffixes = []string{"ltda", "eireli", "epp", "s a", "sa", "me"}

var (
	noiseTokenRe = regexp.MustCompile(`\b(veo\d+|vec\d+|dbr|deb|cred|aut\d+|nsu\d+)\b`)
	longDigitsRe = regexp.MustCompile(`\d{4,}`)
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N} ]+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	deaccenting  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	titleCaser   = cases.Title(language.BrazilianPortuguese)
)

// Deaccent removes diacritics via NFD decomposition, dropping combining marks.
func Deaccent(s string) string {
	out, _, err := transform.String(deaccenting, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lower-cases, de-accents and de-noises a raw statement description.
// It is total: any input yields a (possibly empty) string.
func Normalize(description string) string {
	s := strings.ToLower(Deaccent(description))

	for _, prefix := range bankPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}

	s = noiseTokenRe.ReplaceAllString(s, " ")
	s = longDigitsRe.ReplaceAllString(s, " ")
	s = punctRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))

	for _, suffix := range legalSuffixes {
		if s == suffix {
			return ""
		}
		if strings.HasSuffix(s, " "+suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	return s
}

// DisplayName renders an extracted merchant substring as the title-cased,
// de-accented form shown to users ("SUPERMERCADO TONIN" -> "Supermercado Tonin").
func DisplayName(merchantRaw string) string {
	s := strings.TrimSpace(multiSpaceRe.ReplaceAllString(Deaccent(merchantRaw), " "))
	return titleCaser.String(strings.ToLower(s))
}

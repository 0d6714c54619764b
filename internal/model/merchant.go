package model

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Merchant is a per-user merchant identity, created the first time a
// transaction resolves to a new slug and reused on every later import.
type Merchant struct {
	CreatedAt     time.Time
	ID            string
	UserID        string
	Slug          string
	CanonicalName string
	CNPJ          string
	UseCount      int
}

// CorrectionRule is a user-taught substring rule. Rules are consulted before
// the static dictionary and never auto-deleted.
type CorrectionRule struct {
	CreatedAt  time.Time
	ID         string
	UserID     string
	Pattern    string // matched by substring containment against normalized text
	MerchantID string
	Canonical  string
	Category   string
	CNPJ       string
	Confidence float64
}

var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives the URL-safe lowercase identity key from a display name.
// "São João Pães" becomes "sao-joao-paes".
func Slugify(name string) string {
	stripped, _, err := transform.String(slugStripper, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

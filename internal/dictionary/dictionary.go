// Package dictionary matches normalized statement text against a static,
// hand-curated table of known Brazilian merchants.
package dictionary

import "strings"

// Entry describes one known merchant: any keyword hit maps text to the
// canonical identity at the entry's fixed base confidence.
type Entry struct {
	CanonicalName  string
	Category       string
	BusinessType   string
	Keywords       []string
	BaseConfidence float64
}

// Match is the result of a dictionary hit.
type Match struct {
	CanonicalName string
	Category      string
	BusinessType  string
	Confidence    float64
}

// wordPenalty discounts word-level hits: a single token contained in a
// keyword is weaker evidence than the keyword appearing in the text.
const wordPenalty = 0.8

// minTokenLen gates the word-level pass; shorter tokens are too common to
// count as evidence.
const minTokenLen = 3

// Dictionary holds entries in insertion order; the first hit wins.
type Dictionary struct {
	entries []Entry
}

// New creates a dictionary from the given entries, preserving order.
func New(entries []Entry) *Dictionary {
	return &Dictionary{entries: entries}
}

// Lookup matches normalized text against the dictionary. The exact pass
// checks keyword-in-text containment at base confidence; the word-level
// fallback checks token-in-keyword containment at a penalized confidence.
// Returns nil when nothing matches.
func (d *Dictionary) Lookup(normalizedText string) *Match {
	if normalizedText == "" {
		return nil
	}
	text := strings.ToLower(normalizedText)

	for i := range d.entries {
		e := &d.entries[i]
		for _, kw := range e.Keywords {
			if strings.Contains(text, kw) {
				return matchOf(e, e.BaseConfidence)
			}
		}
	}

	for _, token := range strings.Fields(text) {
		if len(token) < minTokenLen {
			continue
		}
		for i := range d.entries {
			e := &d.entries[i]
			for _, kw := range e.Keywords {
				if strings.Contains(kw, token) {
					return matchOf(e, e.BaseConfidence*wordPenalty)
				}
			}
		}
	}

	return nil
}

// Len returns the number of loaded entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

func matchOf(e *Entry, confidence float64) *Match {
	return &Match{
		CanonicalName: e.CanonicalName,
		Category:      e.Category,
		BusinessType:  e.BusinessType,
		Confidence:    confidence,
	}
}

// Package rules provides the fallback category rule engine: an ordered list
// of regex-to-category rules applied when dictionary and fuzzy matching fail.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps a merchant-name regex to a category at a fixed confidence.
type Rule struct {
	Name       string
	Regex      string
	Category   string
	Confidence float64
}

// Match is the result of a rule hit.
type Match struct {
	RuleName   string
	Category   string
	Confidence float64
}

type compiledRule struct {
	re *regexp.Regexp
	Rule
}

// Engine evaluates rules in declaration order; the first match wins.
type Engine struct {
	rules []compiledRule
}

// NewEngine compiles the given rules, preserving order. Patterns are made
// case-insensitive unless they already carry a flag.
func NewEngine(rs []Rule) (*Engine, error) {
	compiled := make([]compiledRule, 0, len(rs))
	for _, r := range rs {
		pattern := r.Regex
		if !strings.HasPrefix(pattern, "(?i)") {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{re: re, Rule: r})
	}
	return &Engine{rules: compiled}, nil
}

// Apply returns the first rule matching the merchant name, or nil.
func (e *Engine) Apply(merchantNorm string) *Match {
	for _, r := range e.rules {
		if r.re.MatchString(merchantNorm) {
			return &Match{RuleName: r.Name, Category: r.Category, Confidence: r.Confidence}
		}
	}
	return nil
}

// Len returns the number of compiled rules.
func (e *Engine) Len() int {
	return len(e.rules)
}

// DefaultRules returns the built-in ordered rule list. Declaration order is
// the precedence, independent of confidence: restaurants come before
// pharmacies so a "restaurante do hospital" line is food, not healthcare.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "Fuel stations",
			Regex:      `\b(posto|combustivel|gasolina|etanol|auto posto)\b`,
			Category:   "Transporte",
			Confidence: 0.93,
		},
		{
			Name:       "Supermarkets",
			Regex:      `\b(supermercado|mercado|mercearia|hortifruti|atacad(o|ista|ao))\b`,
			Category:   "Alimentação",
			Confidence: 0.92,
		},
		{
			Name:       "Telecom",
			Regex:      `\b(telefonia|internet|fibra|celular|telecom)\b`,
			Category:   "Serviços",
			Confidence: 0.92,
		},
		{
			Name:       "Ride hailing",
			Regex:      `\b(uber|99pop|taxi|cabify)\b`,
			Category:   "Transporte",
			Confidence: 0.90,
		},
		{
			Name:       "Payment processors",
			Regex:      `\b(pagseguro|pagbank|mercado ?pago|picpay|stone|cielo|rede|getnet)\b`,
			Category:   "Serviços Financeiros",
			Confidence: 0.90,
		},
		{
			Name:       "Restaurants",
			Regex:      `\b(restaurante|lanchonete|pizzaria|padaria|churrascaria|bar|cafe|confeitaria)\b`,
			Category:   "Alimentação",
			Confidence: 0.88,
		},
		{
			Name:       "Pharmacies and clinics",
			Regex:      `\b(farmacia|drogaria|droga|clinica|laboratorio|hospital|odonto)\b`,
			Category:   "Saúde",
			Confidence: 0.90,
		},
		{
			Name:       "Schools",
			Regex:      `\b(escola|colegio|faculdade|universidade|curso)\b`,
			Category:   "Educação",
			Confidence: 0.88,
		},
		{
			Name:       "Generic services",
			Regex:      `\b(servico|assinatura|mensalidade|consultoria|manutencao)\b`,
			Category:   "Serviços",
			Confidence: 0.85,
		},
	}
}

package fuzzy

import "testing"

func TestCategoryForCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want string
	}{
		{name: "supermarket with punctuation", cnpj: "45.543.915/0001-77", want: "Alimentação"},
		{name: "fuel retail", cnpj: "06626253000195", want: "Transporte"},
		{name: "digital bank", cnpj: "18.236.120/0001-58", want: "Serviços Financeiros"},
		{name: "food delivery", cnpj: "14380200000121", want: "Alimentação"},
		{name: "telecom", cnpj: "02558157000162", want: "Serviços"},
		{name: "unknown company", cnpj: "11111111000111", want: ""},
		{name: "too short", cnpj: "1234", want: ""},
		{name: "empty", cnpj: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryForCNPJ(tt.cnpj); got != tt.want {
				t.Errorf("CategoryForCNPJ(%q) = %q, want %q", tt.cnpj, got, tt.want)
			}
		})
	}
}

func TestCNPJRootIgnoresBranch(t *testing.T) {
	// Branch and check digits differ; the company root decides the category.
	if CategoryForCNPJ("45543915000177") != CategoryForCNPJ("45543915001239") {
		t.Error("different branches of the same company should map to the same category")
	}
}

package fuzzy

import "strings"

// cnaePrefix maps a CNAE code prefix to a spending category. Ordered; the
// first matching prefix wins, so longer prefixes come before shorter ones.
type cnaePrefix struct {
	prefix   string
	category string
}

var cnaeCategories = []cnaePrefix{
	{"47.11", "Alimentação"},        // hyper/supermarkets
	{"47.3", "Transporte"},          // fuel retail
	{"47.71", "Saúde"},              // pharmacies
	{"56.", "Alimentação"},          // food service
	{"49.", "Transporte"},           // land transport
	{"61.", "Serviços"},             // telecom
	{"64.", "Serviços Financeiros"}, // financial services
	{"66.", "Serviços Financeiros"}, // payment institutions
	{"85.", "Educação"},             // education
	{"86.", "Saúde"},                // healthcare
	{"59.", "Entretenimento"},       // audiovisual
	{"90.", "Entretenimento"},       // arts
}

// registeredCNAE is a small curated registry of business-activity codes for
// merchants whose CNPJ shows up on statements. Keyed by CNPJ root (first 8
// digits), which identifies the company regardless of branch.
var registeredCNAE = map[string]string{
	"45543915": "47.11", // Carrefour
	"47508411": "47.11", // Pão de Açúcar (CBD)
	"06626253": "47.3",  // Ipiranga Produtos de Petróleo
	"61585865": "47.71", // Raia Drogasil
	"02558157": "61.",   // Telefônica Brasil (Vivo)
	"40432544": "61.",   // Claro
	"18236120": "64.",   // Nubank (Nu Pagamentos)
	"10573521": "66.",   // Mercado Pago
	"08561701": "66.",   // PagSeguro
	"14380200": "56.",   // iFood
	"17895646": "49.",   // Uber do Brasil
}

// CategoryForCNPJ maps a merchant's CNPJ to a category via its registered
// CNAE prefix. Returns empty string when the CNPJ or its activity code is
// unknown.
func CategoryForCNPJ(cnpj string) string {
	root := cnpjRoot(cnpj)
	if root == "" {
		return ""
	}
	cnae, ok := registeredCNAE[root]
	if !ok {
		return ""
	}
	for _, p := range cnaeCategories {
		if strings.HasPrefix(cnae, p.prefix) {
			return p.category
		}
	}
	return ""
}

// cnpjRoot extracts the first 8 digits of a CNPJ, ignoring punctuation.
func cnpjRoot(cnpj string) string {
	var digits []byte
	for i := 0; i < len(cnpj) && len(digits) < 8; i++ {
		if cnpj[i] >= '0' && cnpj[i] <= '9' {
			digits = append(digits, cnpj[i])
		}
	}
	if len(digits) < 8 {
		return ""
	}
	return string(digits)
}

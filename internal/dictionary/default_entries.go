package dictionary

// Category names used across the application.
const (
	CategoryFood          = "Alimentação"
	CategoryTransport     = "Transporte"
	CategoryServices      = "Serviços"
	CategoryHealth        = "Saúde"
	CategoryFinancial     = "Serviços Financeiros"
	CategoryEntertainment = "Entretenimento"
	CategoryEducation     = "Educação"
	CategoryOther         = "Outros"
)

// DefaultEntries returns the built-in table of known Brazilian merchants.
// Keywords are matched against already-normalized (lowercase, de-accented)
// text, so they carry no diacritics. Two-letter brands are entered with a
// qualifier so the substring pass cannot fire on incidental containment.
func DefaultEntries() []Entry {
	return []Entry{
		// Supermarkets
		{CanonicalName: "Luiz Tonin", Category: CategoryFood, BusinessType: "supermercado", Keywords: []string{"tonin", "luiz tonin"}, BaseConfidence: 0.95},
		{CanonicalName: "Carrefour", Category: CategoryFood, BusinessType: "supermercado", Keywords: []string{"carrefour"}, BaseConfidence: 0.95},
		{CanonicalName: "Pão de Açúcar", Category: CategoryFood, BusinessType: "supermercado", Keywords: []string{"pao de acucar"}, BaseConfidence: 0.95},
		{CanonicalName: "Assaí Atacadista", Category: CategoryFood, BusinessType: "atacado", Keywords: []string{"assai"}, BaseConfidence: 0.95},
		{CanonicalName: "Atacadão", Category: CategoryFood, BusinessType: "atacado", Keywords: []string{"atacadao"}, BaseConfidence: 0.95},
		{CanonicalName: "Dia Supermercado", Category: CategoryFood, BusinessType: "supermercado", Keywords: []string{"dia supermercado", "supermercado dia"}, BaseConfidence: 0.9},

		// Food delivery and restaurants
		{CanonicalName: "iFood", Category: CategoryFood, BusinessType: "delivery", Keywords: []string{"ifood"}, BaseConfidence: 0.95},
		{CanonicalName: "McDonald's", Category: CategoryFood, BusinessType: "restaurante", Keywords: []string{"mcdonalds", "mc donalds", "arcos dourados"}, BaseConfidence: 0.95},
		{CanonicalName: "Burger King", Category: CategoryFood, BusinessType: "restaurante", Keywords: []string{"burger king"}, BaseConfidence: 0.95},
		{CanonicalName: "Habib's", Category: CategoryFood, BusinessType: "restaurante", Keywords: []string{"habibs"}, BaseConfidence: 0.9},

		// Transport
		{CanonicalName: "Uber", Category: CategoryTransport, BusinessType: "aplicativo", Keywords: []string{"uber"}, BaseConfidence: 0.95},
		{CanonicalName: "99", Category: CategoryTransport, BusinessType: "aplicativo", Keywords: []string{"99app", "99 tecnologia", "99pop"}, BaseConfidence: 0.95},
		{CanonicalName: "Posto Ipiranga", Category: CategoryTransport, BusinessType: "combustivel", Keywords: []string{"ipiranga"}, BaseConfidence: 0.93},
		{CanonicalName: "Shell", Category: CategoryTransport, BusinessType: "combustivel", Keywords: []string{"shell"}, BaseConfidence: 0.93},
		{CanonicalName: "Petrobras", Category: CategoryTransport, BusinessType: "combustivel", Keywords: []string{"petrobras", "posto br"}, BaseConfidence: 0.93},

		// Telecom and utilities
		{CanonicalName: "Vivo", Category: CategoryServices, BusinessType: "telecom", Keywords: []string{"vivo fibra", "vivo movel", "telefonica"}, BaseConfidence: 0.95},
		{CanonicalName: "Claro", Category: CategoryServices, BusinessType: "telecom", Keywords: []string{"claro"}, BaseConfidence: 0.95},
		{CanonicalName: "TIM", Category: CategoryServices, BusinessType: "telecom", Keywords: []string{"tim celular", "tim brasil"}, BaseConfidence: 0.95},
		{CanonicalName: "Oi", Category: CategoryServices, BusinessType: "telecom", Keywords: []string{"oi fibra", "oi movel"}, BaseConfidence: 0.95},

		// Pharmacy and health
		{CanonicalName: "Droga Raia", Category: CategoryHealth, BusinessType: "farmacia", Keywords: []string{"droga raia", "drogaraia", "raia drogasil"}, BaseConfidence: 0.95},
		{CanonicalName: "Drogasil", Category: CategoryHealth, BusinessType: "farmacia", Keywords: []string{"drogasil"}, BaseConfidence: 0.95},
		{CanonicalName: "Pague Menos", Category: CategoryHealth, BusinessType: "farmacia", Keywords: []string{"pague menos"}, BaseConfidence: 0.9},
		{CanonicalName: "Ultrafarma", Category: CategoryHealth, BusinessType: "farmacia", Keywords: []string{"ultrafarma"}, BaseConfidence: 0.9},

		// Banks and payments
		{CanonicalName: "Nubank", Category: CategoryFinancial, BusinessType: "banco", Keywords: []string{"nubank", "nu pagamentos"}, BaseConfidence: 0.95},
		{CanonicalName: "Banco Itaú", Category: CategoryFinancial, BusinessType: "banco", Keywords: []string{"itau"}, BaseConfidence: 0.95},
		{CanonicalName: "Banco Bradesco", Category: CategoryFinancial, BusinessType: "banco", Keywords: []string{"bradesco"}, BaseConfidence: 0.95},
		{CanonicalName: "Banco do Brasil", Category: CategoryFinancial, BusinessType: "banco", Keywords: []string{"banco do brasil", "bco brasil"}, BaseConfidence: 0.95},
		{CanonicalName: "Caixa Econômica Federal", Category: CategoryFinancial, BusinessType: "banco", Keywords: []string{"caixa economica", "cef"}, BaseConfidence: 0.9},
		{CanonicalName: "PagSeguro", Category: CategoryFinancial, BusinessType: "pagamentos", Keywords: []string{"pagseguro", "pagbank"}, BaseConfidence: 0.93},
		{CanonicalName: "Mercado Pago", Category: CategoryFinancial, BusinessType: "pagamentos", Keywords: []string{"mercado pago", "mercadopago"}, BaseConfidence: 0.93},
		{CanonicalName: "PicPay", Category: CategoryFinancial, BusinessType: "pagamentos", Keywords: []string{"picpay"}, BaseConfidence: 0.93},

		// Subscriptions and entertainment
		{CanonicalName: "Netflix", Category: CategoryEntertainment, BusinessType: "streaming", Keywords: []string{"netflix"}, BaseConfidence: 0.95},
		{CanonicalName: "Spotify", Category: CategoryEntertainment, BusinessType: "streaming", Keywords: []string{"spotify"}, BaseConfidence: 0.95},
		{CanonicalName: "Globoplay", Category: CategoryEntertainment, BusinessType: "streaming", Keywords: []string{"globoplay", "globo com"}, BaseConfidence: 0.9},

		// Marketplaces
		{CanonicalName: "Mercado Livre", Category: CategoryServices, BusinessType: "marketplace", Keywords: []string{"mercado livre", "mercadolivre", "melimais"}, BaseConfidence: 0.93},
		{CanonicalName: "Amazon", Category: CategoryServices, BusinessType: "marketplace", Keywords: []string{"amazon"}, BaseConfidence: 0.93},
		{CanonicalName: "Magazine Luiza", Category: CategoryServices, BusinessType: "marketplace", Keywords: []string{"magazine luiza", "magalu"}, BaseConfidence: 0.93},
	}
}

package entity

import "strings"

// countryCurrencies maps the country names offered by the registration form to ISO currency codes
var countryCurrencies = map[string]string{
	"nigeria":        "NGN",
	"ghana":          "GHS",
	"kenya":          "KES",
	"south africa":   "ZAR",
	"uganda":         "UGX",
	"tanzania":       "TZS",
	"rwanda":         "RWF",
	"cameroon":       "XAF",
	"ivory coast":    "XOF",
	"cote d'ivoire":  "XOF",
	"senegal":        "XOF",
	"benin":          "XOF",
	"togo":           "XOF",
	"egypt":          "EGP",
	"morocco":        "MAD",
	"ethiopia":       "ETB",
	"zambia":         "ZMW",
	"united states":  "USD",
	"usa":            "USD",
	"us":             "USD",
	"united kingdom": "GBP",
	"uk":             "GBP",
	"canada":         "CAD",
	"australia":      "AUD",
	"germany":        "EUR",
	"france":         "EUR",
	"italy":          "EUR",
	"spain":          "EUR",
	"netherlands":    "EUR",
	"ireland":        "EUR",
	"india":          "INR",
	"china":          "CNY",
	"japan":          "JPY",
	"brazil":         "BRL",
	"mexico":         "MXN",
}

// CurrencyForCountry returns the currency code for a country name, or "" when unmapped
func CurrencyForCountry(country string) string {
	return countryCurrencies[strings.ToLower(strings.TrimSpace(country))]
}

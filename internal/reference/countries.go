// Package reference serves the static reference data behind the customer and
// organisation forms.
package reference

import (
	"regexp"
	"strings"
)

// Country describes one supported billing country: its dial code plus the
// validation rules for phone numbers and the local tax identifier.
type Country struct {
	Code     string `json:"cid"`
	Name     string `json:"cname"`
	DialCode string `json:"code"`
	TaxLabel string `json:"tax_label"`

	phonePattern *regexp.Regexp
	taxIDPattern *regexp.Regexp
}

// ValidPhone reports whether the value matches the country's phone format.
func (c Country) ValidPhone(value string) bool {
	return c.phonePattern.MatchString(value)
}

// ValidTaxID reports whether the value matches the country's tax identifier
// format (GSTIN, EIN, VAT number, ABN).
func (c Country) ValidTaxID(value string) bool {
	return c.taxIDPattern.MatchString(value)
}

var countries = []Country{
	{
		Code:         "IN",
		Name:         "India",
		DialCode:     "+91",
		TaxLabel:     "GSTIN",
		phonePattern: regexp.MustCompile(`^[6-9]\d{9}$`),
		taxIDPattern: regexp.MustCompile(`^[0-9A-Z]{15}$`),
	},
	{
		Code:         "US",
		Name:         "USA",
		DialCode:     "+1",
		TaxLabel:     "EIN",
		phonePattern: regexp.MustCompile(`^\d{10}$`),
		taxIDPattern: regexp.MustCompile(`^\d{2}-\d{7}$`),
	},
	{
		Code:         "UK",
		Name:         "UK",
		DialCode:     "+44",
		TaxLabel:     "VAT Number",
		phonePattern: regexp.MustCompile(`^(\d{10,11})$`),
		taxIDPattern: regexp.MustCompile(`^GB\d{9}$`),
	},
	{
		Code:         "AU",
		Name:         "Australia",
		DialCode:     "+61",
		TaxLabel:     "ABN",
		phonePattern: regexp.MustCompile(`^(\d{9})$`),
		taxIDPattern: regexp.MustCompile(`^\d{11}$`),
	},
}

// Countries returns the supported country list in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CountryByCode looks a country up by its ISO-style code. The second return
// is false when the code is unknown.
func CountryByCode(code string) (Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// CountryByName looks a country up by its display name, case-insensitively.
// The customer and organisation forms store the display name.
func CountryByName(name string) (Country, bool) {
	for _, c := range countries {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Country{}, false
}

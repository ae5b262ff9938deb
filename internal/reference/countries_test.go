package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	list := Countries()
	require.Len(t, list, 4)
	assert.Equal(t, "IN", list[0].Code)
	assert.Equal(t, "+91", list[0].DialCode)
	assert.Equal(t, "GSTIN", list[0].TaxLabel)
}

func TestCountryByCode(t *testing.T) {
	country, ok := CountryByCode("AU")
	require.True(t, ok)
	assert.Equal(t, "Australia", country.Name)

	_, ok = CountryByCode("DE")
	assert.False(t, ok)
}

func TestCountryByName(t *testing.T) {
	country, ok := CountryByName("india")
	require.True(t, ok)
	assert.Equal(t, "IN", country.Code)

	_, ok = CountryByName("Iceland")
	assert.False(t, ok)
}

func TestIndiaValidation(t *testing.T) {
	india, ok := CountryByCode("IN")
	require.True(t, ok)

	assert.True(t, india.ValidPhone("9876543210"))
	assert.False(t, india.ValidPhone("1234567890"))
	assert.False(t, india.ValidPhone("98765"))

	assert.True(t, india.ValidTaxID("29ABCDE1234F1Z5"))
	assert.False(t, india.ValidTaxID("29abcde1234f1z5"))
}

func TestUSValidation(t *testing.T) {
	us, ok := CountryByCode("US")
	require.True(t, ok)

	assert.True(t, us.ValidPhone("2025550123"))
	assert.False(t, us.ValidPhone("202555012"))

	assert.True(t, us.ValidTaxID("12-3456789"))
	assert.False(t, us.ValidTaxID("123456789"))
}

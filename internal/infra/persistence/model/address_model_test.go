package model

import (
	"testing"

	"addressconv/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressModel_DomainMapping(t *testing.T) {
	source, err := entity.DecodeAddress([]byte(`{
		"business_name": "Société DUPONT",
		"recipient": "Mademoiselle Lucie MARTIN",
		"street": "56 RUE EMILE ZOLA",
		"distribution_info": "BP 90432 MONTFERRIER SUR LEZ",
		"postal": "34092 MONTPELLIER CEDEX 5",
		"country": "FRANCE"
	}`), entity.FormatFrench)
	require.NoError(t, err)
	converted, err := source.ToCanonical()
	require.NoError(t, err)
	address := entity.NewAddress(converted)

	stored := FromAddressDomain(address)
	assert.Equal(t, "business", stored.Kind)
	assert.Equal(t, "french", stored.SourceFormat)
	assert.Equal(t, "56", stored.StreetNumber)
	assert.Equal(t, "BP 90432", stored.Postbox)
	assert.Equal(t, "MONTFERRIER SUR LEZ", stored.TownLocation)
	assert.Equal(t, "FR", stored.Country)

	restored, err := ToAddressDomain(stored)
	require.NoError(t, err)
	assert.Equal(t, address.ID(), restored.ID())
	assert.Equal(t, address.Fields(), restored.Fields())
}

func TestToAddressDomain_RejectsCorruptedRecord(t *testing.T) {
	stored := &AddressModel{Kind: "individual", RecipientName: "Jean", StreetName: "RUE HAUTE", Postcode: "75001", Town: "PARIS", Country: "FR"}

	_, err := ToAddressDomain(stored)
	assert.Error(t, err, "missing identifier")

	assert.Nil(t, FromAddressDomain(nil))
}

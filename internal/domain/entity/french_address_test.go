package entity

import (
	"testing"

	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frenchIndividual() FrenchAddress {
	return FrenchAddress{
		Name:             "Monsieur Jean DELHOURME",
		InternalDelivery: "Chez Mireille COPEAU Appartement 2",
		ExternalDelivery: "Entrée A Bâtiment Jonquille",
		Street:           "25 RUE DE L'EGLISE",
		DistributionInfo: "CAUDOS",
		Postal:           "33380 MIOS",
		Country:          "FRANCE",
	}
}

func frenchBusiness() FrenchAddress {
	return FrenchAddress{
		BusinessName:     "Société DUPONT",
		Recipient:        "Mademoiselle Lucie MARTIN",
		ExternalDelivery: "Résidence des Capucins Bâtiment Quater",
		Street:           "56 RUE EMILE ZOLA",
		DistributionInfo: "BP 90432 MONTFERRIER SUR LEZ",
		Postal:           "34092 MONTPELLIER CEDEX 5",
		Country:          "FRANCE",
	}
}

func TestNewFrenchAddress_NormalizesWhitespace(t *testing.T) {
	in := frenchIndividual()
	in.Street = "  25   RUE DE  L'EGLISE "
	in.Postal = "33380\tMIOS"

	address, err := NewFrenchAddress(in)
	require.NoError(t, err)
	assert.Equal(t, "25 RUE DE L'EGLISE", address.Street)
	assert.Equal(t, "33380 MIOS", address.Postal)
	assert.Equal(t, KindIndividual, address.Kind())
	assert.Equal(t, FormatFrench, address.Format())
}

func TestNewFrenchAddress_Violations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FrenchAddress)
		wantField string
	}{
		{name: "missing street", mutate: func(a *FrenchAddress) { a.Street = " " }, wantField: "street"},
		{name: "missing postal", mutate: func(a *FrenchAddress) { a.Postal = "" }, wantField: "postal"},
		{name: "missing country", mutate: func(a *FrenchAddress) { a.Country = "" }, wantField: "country"},
		{name: "no recipient line", mutate: func(a *FrenchAddress) { a.Name = "" }, wantField: "name"},
		{name: "both recipient lines", mutate: func(a *FrenchAddress) { a.BusinessName = "ACME" }, wantField: "business_name"},
		{name: "recipient on individual", mutate: func(a *FrenchAddress) { a.Recipient = "Service achats" }, wantField: "recipient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := frenchIndividual()
			tt.mutate(&in)

			address, err := NewFrenchAddress(in)
			assert.Equal(t, FrenchAddress{}, address)

			validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok, "got %v", err)
			assert.True(t, validationErr.HasField(tt.wantField), validationErr.Details())
		})
	}
}

func TestNewFrenchAddress_InternalDeliveryOnBusiness(t *testing.T) {
	in := frenchBusiness()
	in.InternalDelivery = "Bureau 12"

	_, err := NewFrenchAddress(in)
	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.True(t, validationErr.HasField("internal_delivery"))
}

func TestDecodeFrenchAddress(t *testing.T) {
	address, err := DecodeFrenchAddress([]byte(`{"name":"Jean","street":"1 RUE HAUTE","postal":"75001 PARIS","country":"france"}`))
	require.NoError(t, err)
	assert.Equal(t, "Jean", address.Name)

	_, err = DecodeFrenchAddress([]byte(`{"name":"Jean","street":"1 RUE HAUTE","postal":"75001 PARIS","country":"FRANCE","floor":"3"}`))
	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.True(t, validationErr.HasField("body"))

	_, err = DecodeFrenchAddress([]byte(`{"name":`))
	_, ok = errors.AsType[*domainerrors.ValidationError](err)
	assert.True(t, ok)
}

func TestFrenchAddress_ToCanonical_Individual(t *testing.T) {
	converted, err := frenchIndividual().ToCanonical()
	require.NoError(t, err)

	fields := converted.Fields()
	assert.Equal(t, FormatFrench, converted.Source())
	assert.Equal(t, KindIndividual, fields.Kind)
	assert.Equal(t, Recipient{Name: "Monsieur Jean DELHOURME"}, fields.Recipient)
	assert.Equal(t, DeliveryPoint{
		External: "Entrée A Bâtiment Jonquille",
		Internal: "Chez Mireille COPEAU Appartement 2",
		Postbox:  "CAUDOS",
	}, fields.DeliveryPoint)
	assert.Equal(t, Street{Number: "25", Name: "RUE DE L'EGLISE"}, fields.Street)
	assert.Equal(t, PostalDetails{Postcode: "33380", Town: "MIOS"}, fields.PostalDetails)
	assert.Equal(t, CountryFrance, fields.Country)
}

func TestFrenchAddress_ToCanonical_Business(t *testing.T) {
	converted, err := frenchBusiness().ToCanonical()
	require.NoError(t, err)

	fields := converted.Fields()
	assert.Equal(t, KindBusiness, fields.Kind)
	assert.Equal(t, Recipient{CompanyName: "Société DUPONT", Contact: "Mademoiselle Lucie MARTIN"}, fields.Recipient)
	assert.Equal(t, DeliveryPoint{External: "Résidence des Capucins Bâtiment Quater", Postbox: "BP 90432"}, fields.DeliveryPoint)
	assert.Equal(t, PostalDetails{Postcode: "34092", Town: "MONTPELLIER CEDEX 5", TownLocation: "MONTFERRIER SUR LEZ"}, fields.PostalDetails)
}

func TestFrenchAddress_ToCanonical_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FrenchAddress)
		wantField string
	}{
		{name: "unknown country", mutate: func(a *FrenchAddress) { a.Country = "ATLANTIDE" }, wantField: "country"},
		{name: "postal without postcode", mutate: func(a *FrenchAddress) { a.Postal = "MIOS" }, wantField: "postal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := frenchIndividual()
			tt.mutate(&in)

			_, err := in.ToCanonical()
			conversionErr, ok := errors.AsType[*domainerrors.ConversionError](err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.wantField, conversionErr.Field)
		})
	}
}

func TestFrenchAddress_RoundTrip(t *testing.T) {
	for _, in := range []FrenchAddress{frenchIndividual(), frenchBusiness()} {
		t.Run(string(in.Kind()), func(t *testing.T) {
			converted, err := in.ToCanonical()
			require.NoError(t, err)

			out, err := FrenchFromCanonical(converted)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestFrenchFromCanonical_MissingRecipient(t *testing.T) {
	fields := CanonicalFields{
		Kind:          KindIndividual,
		Street:        Street{Name: "RUE HAUTE"},
		PostalDetails: PostalDetails{Postcode: "75001", Town: "PARIS"},
		Country:       CountryFrance,
	}

	_, err := FrenchFromCanonical(newConvertedAddress(fields, FormatISO20022))
	conversionErr, ok := errors.AsType[*domainerrors.ConversionError](err)
	require.True(t, ok)
	assert.Equal(t, "recipient.name", conversionErr.Field)
}

func TestFrenchFromCanonical_ZeroValueDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := FrenchFromCanonical(ConvertedAddress{})
		assert.Error(t, err)
	})
}

package entity

import (
	domainerrors "addressconv/internal/domain/errors"
)

// Recipient keeps track of who the mail is for. Some standards like ISO 20022
// store this information outside of the postal address block.
type Recipient struct {
	Name        string // Individual identity (M. John Doe).
	CompanyName string // Business denomination or brand.
	Contact     string // Contact person or service inside the business.
}

// DeliveryPoint holds the extra delivery point information.
type DeliveryPoint struct {
	External string // Building, residence, entrance.
	Internal string // Apartment, staircase, "chez" mention.
	Postbox  string // Postbox or hamlet (BP 90432, CAUDOS).
}

// Street is the street address split into its number and label.
type Street struct {
	Number string // 2, 2BIS, 25 TER. Empty when the street has no number.
	Name   string // RUE DE L'EGLISE, LE VILLAGE.
}

// String rebuilds the single-line street, number first.
func (s Street) String() string {
	return joinNonEmpty(s.Number, s.Name)
}

// PostalDetails holds the postcode, the town and extra location information.
type PostalDetails struct {
	Postcode     string
	Town         string
	TownLocation string // Commune of the company when it differs from the CEDEX office.
}

// CanonicalFields is the format-agnostic field set shared by ConvertedAddress and Address.
type CanonicalFields struct {
	Kind          AddressKind
	Recipient     Recipient
	DeliveryPoint DeliveryPoint
	Street        Street
	PostalDetails PostalDetails
	Country       Country
}

// validate checks the mandatory canonical fields every target format needs.
func (f CanonicalFields) validate() error {
	switch f.Kind {
	case KindIndividual:
		if f.Recipient.Name == "" {
			return domainerrors.NewConversionError("recipient.name", "individual address has no recipient name")
		}
	case KindBusiness:
		if f.Recipient.CompanyName == "" {
			return domainerrors.NewConversionError("recipient.company_name", "business address has no company name")
		}
	default:
		return domainerrors.NewConversionError("kind", "unknown address kind "+string(f.Kind))
	}

	if f.Street.Name == "" {
		return domainerrors.NewConversionError("street.name", "street name is required")
	}
	if f.PostalDetails.Postcode == "" {
		return domainerrors.NewConversionError("postal_details.postcode", "postcode is required")
	}
	if f.PostalDetails.Town == "" {
		return domainerrors.NewConversionError("postal_details.town", "town is required")
	}
	if _, ok := countryNames[f.Country]; !ok {
		return domainerrors.NewConversionError("country", "unsupported country "+string(f.Country))
	}

	return nil
}

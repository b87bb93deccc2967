package entity

import (
	"strings"
)

// IsoAddress is an ISO 20022 party with its structured postal address.
// Name is set for an individual, BusinessName for a business.
type IsoAddress struct {
	Name          string           `json:"name,omitempty" validate:"required_without=BusinessName,excluded_with=BusinessName"`
	BusinessName  string           `json:"business_name,omitempty" validate:"required_without=Name,excluded_with=Name"`
	PostalAddress IsoPostalAddress `json:"postal_address"`
}

// IsoPostalAddress is the ISO 20022 PostalAddress block. XML element names are
// given for reference.
type IsoPostalAddress struct {
	StreetName       string `json:"street_name" validate:"required"`              // <StrtNm>
	BuildingNumber   string `json:"building_number,omitempty"`                    // <BldgNb>
	Room             string `json:"room,omitempty"`                               // <Room>, individuals only
	Postbox          string `json:"postbox,omitempty"`                            // <PstBx>
	Department       string `json:"department,omitempty"`                         // <Dept>
	Postcode         string `json:"postcode" validate:"required,postcode"`        // <PstCd>
	TownName         string `json:"town_name" validate:"required"`                // <TwnNm>
	TownLocationName string `json:"town_location_name,omitempty"`                 // <TwnLctnNm>, businesses only
	Country          string `json:"country" validate:"required,iso3166_1_alpha2"` // <Ctry>
}

// NewIsoAddress normalizes whitespace, upper-cases the country code and
// validates the result. On failure the zero value is returned with a *ValidationError.
func NewIsoAddress(in IsoAddress) (IsoAddress, error) {
	postal := in.PostalAddress
	address := IsoAddress{
		Name:         normalizeText(in.Name),
		BusinessName: normalizeText(in.BusinessName),
		PostalAddress: IsoPostalAddress{
			StreetName:       normalizeText(postal.StreetName),
			BuildingNumber:   normalizeText(postal.BuildingNumber),
			Room:             normalizeText(postal.Room),
			Postbox:          normalizeText(postal.Postbox),
			Department:       normalizeText(postal.Department),
			Postcode:         normalizeText(postal.Postcode),
			TownName:         normalizeText(postal.TownName),
			TownLocationName: normalizeText(postal.TownLocationName),
			Country:          strings.ToUpper(strings.TrimSpace(postal.Country)),
		},
	}

	if err := validateStruct(address); err != nil {
		return IsoAddress{}, err
	}

	return address, nil
}

// DecodeIsoAddress parses a JSON document into a validated IsoAddress.
func DecodeIsoAddress(data []byte) (IsoAddress, error) {
	var in IsoAddress
	if err := decodeStrict(data, &in); err != nil {
		return IsoAddress{}, err
	}

	return NewIsoAddress(in)
}

// Format implements AddressConvertible.
func (a IsoAddress) Format() Format {
	return FormatISO20022
}

// Kind returns the address variant.
func (a IsoAddress) Kind() AddressKind {
	if a.BusinessName != "" {
		return KindBusiness
	}

	return KindIndividual
}

func (IsoAddress) isAddressFormat() {}

// ToCanonical implements AddressConvertible.
func (a IsoAddress) ToCanonical() (ConvertedAddress, error) {
	address, err := NewIsoAddress(a)
	if err != nil {
		return ConvertedAddress{}, err
	}

	postal := address.PostalAddress
	country, err := CountryFromCode(postal.Country)
	if err != nil {
		return ConvertedAddress{}, err
	}

	fields := CanonicalFields{
		Kind: address.Kind(),
		Street: Street{
			Number: postal.BuildingNumber,
			Name:   postal.StreetName,
		},
		PostalDetails: PostalDetails{
			Postcode: postal.Postcode,
			Town:     postal.TownName,
		},
		Country: country,
	}

	switch fields.Kind {
	case KindIndividual:
		fields.Recipient = Recipient{Name: address.Name}
		fields.DeliveryPoint = DeliveryPoint{
			Internal: postal.Room,
			External: postal.Department,
			Postbox:  postal.Postbox,
		}
	case KindBusiness:
		fields.Recipient = Recipient{
			CompanyName: address.BusinessName,
			Contact:     postal.Department,
		}
		fields.DeliveryPoint = DeliveryPoint{Postbox: postal.Postbox}
		fields.PostalDetails.TownLocation = postal.TownLocationName
	}

	return newConvertedAddress(fields, FormatISO20022), nil
}

// IsoFromCanonical renders canonical data as an ISO 20022 address.
// A business external delivery point has no ISO field and is dropped.
func IsoFromCanonical(converted ConvertedAddress) (IsoAddress, error) {
	fields := converted.Fields()
	if err := fields.validate(); err != nil {
		return IsoAddress{}, err
	}

	out := IsoAddress{
		PostalAddress: IsoPostalAddress{
			StreetName:     fields.Street.Name,
			BuildingNumber: fields.Street.Number,
			Postbox:        fields.DeliveryPoint.Postbox,
			Postcode:       fields.PostalDetails.Postcode,
			TownName:       fields.PostalDetails.Town,
			Country:        fields.Country.Code(),
		},
	}

	switch fields.Kind {
	case KindIndividual:
		out.Name = fields.Recipient.Name
		out.PostalAddress.Room = fields.DeliveryPoint.Internal
		out.PostalAddress.Department = fields.DeliveryPoint.External
		// Individuals carry no town location in ISO 20022.
		out.PostalAddress.Postbox = joinNonEmpty(fields.DeliveryPoint.Postbox, fields.PostalDetails.TownLocation)
	case KindBusiness:
		out.BusinessName = fields.Recipient.CompanyName
		out.PostalAddress.Department = fields.Recipient.Contact
		out.PostalAddress.TownLocationName = fields.PostalDetails.TownLocation
	}

	address, err := NewIsoAddress(out)
	if err != nil {
		return IsoAddress{}, renderFailure(err)
	}

	return address, nil
}

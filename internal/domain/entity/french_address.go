package entity

import (
	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/errors"
)

// FrenchAddress is an address laid out per NF Z10-011. The variant follows from
// which recipient line is filled: Name for an individual, BusinessName for a business.
type FrenchAddress struct {
	// Individual identity (civility, title, first name, last name).
	Name string `json:"name,omitempty" validate:"required_without=BusinessName,excluded_with=BusinessName"`
	// Business name or trade name.
	BusinessName string `json:"business_name,omitempty" validate:"required_without=Name,excluded_with=Name"`
	// Identity of the recipient and/or service inside the business.
	Recipient string `json:"recipient,omitempty" validate:"excluded_with=Name"`
	// Apartment number, mailbox number, staircase, floor. Individuals only.
	InternalDelivery string `json:"internal_delivery,omitempty" validate:"excluded_with=BusinessName"`
	// Building, residence, entrance.
	ExternalDelivery string `json:"external_delivery,omitempty"`
	// Route number and label.
	Street string `json:"street" validate:"required"`
	// Hamlet, postal box, or for businesses the BP plus the commune when it
	// differs from the CEDEX office.
	DistributionInfo string `json:"distribution_info,omitempty"`
	// Postcode and destination locality, or CEDEX code and office.
	Postal string `json:"postal" validate:"required"`
	// Country name.
	Country string `json:"country" validate:"required"`
}

// NewFrenchAddress normalizes whitespace in every line and validates the
// result. On failure the zero value is returned with a *ValidationError.
func NewFrenchAddress(in FrenchAddress) (FrenchAddress, error) {
	address := FrenchAddress{
		Name:             normalizeText(in.Name),
		BusinessName:     normalizeText(in.BusinessName),
		Recipient:        normalizeText(in.Recipient),
		InternalDelivery: normalizeText(in.InternalDelivery),
		ExternalDelivery: normalizeText(in.ExternalDelivery),
		Street:           normalizeText(in.Street),
		DistributionInfo: normalizeText(in.DistributionInfo),
		Postal:           normalizeText(in.Postal),
		Country:          normalizeText(in.Country),
	}

	if err := validateStruct(address); err != nil {
		return FrenchAddress{}, err
	}

	return address, nil
}

// DecodeFrenchAddress parses a JSON document into a validated FrenchAddress.
func DecodeFrenchAddress(data []byte) (FrenchAddress, error) {
	var in FrenchAddress
	if err := decodeStrict(data, &in); err != nil {
		return FrenchAddress{}, err
	}

	return NewFrenchAddress(in)
}

// Format implements AddressConvertible.
func (a FrenchAddress) Format() Format {
	return FormatFrench
}

// Kind returns the address variant.
func (a FrenchAddress) Kind() AddressKind {
	if a.BusinessName != "" {
		return KindBusiness
	}

	return KindIndividual
}

func (FrenchAddress) isAddressFormat() {}

// ToCanonical implements AddressConvertible.
func (a FrenchAddress) ToCanonical() (ConvertedAddress, error) {
	address, err := NewFrenchAddress(a)
	if err != nil {
		return ConvertedAddress{}, err
	}

	country, err := LookupCountry(address.Country)
	if err != nil {
		return ConvertedAddress{}, err
	}

	postcode, town, err := splitPostal(address.Postal, country)
	if err != nil {
		return ConvertedAddress{}, err
	}

	fields := CanonicalFields{
		Kind:   address.Kind(),
		Street: splitStreet(address.Street),
		PostalDetails: PostalDetails{
			Postcode: postcode,
			Town:     town,
		},
		Country: country,
	}
	if fields.Street.Name == "" {
		return ConvertedAddress{}, domainerrors.NewConversionError("street", "street has no label")
	}

	switch fields.Kind {
	case KindIndividual:
		fields.Recipient = Recipient{Name: address.Name}
		fields.DeliveryPoint = DeliveryPoint{
			Internal: address.InternalDelivery,
			External: address.ExternalDelivery,
			Postbox:  address.DistributionInfo,
		}
	case KindBusiness:
		postbox, townLocation := splitDistribution(address.DistributionInfo)
		fields.Recipient = Recipient{
			CompanyName: address.BusinessName,
			Contact:     address.Recipient,
		}
		fields.DeliveryPoint = DeliveryPoint{
			External: address.ExternalDelivery,
			Postbox:  postbox,
		}
		fields.PostalDetails.TownLocation = townLocation
	}

	return newConvertedAddress(fields, FormatFrench), nil
}

// FrenchFromCanonical renders canonical data as a French address.
func FrenchFromCanonical(converted ConvertedAddress) (FrenchAddress, error) {
	fields := converted.Fields()
	if err := fields.validate(); err != nil {
		return FrenchAddress{}, err
	}

	out := FrenchAddress{
		ExternalDelivery: fields.DeliveryPoint.External,
		Street:           fields.Street.String(),
		DistributionInfo: joinNonEmpty(fields.DeliveryPoint.Postbox, fields.PostalDetails.TownLocation),
		Postal:           joinNonEmpty(fields.PostalDetails.Postcode, fields.PostalDetails.Town),
		Country:          fields.Country.Name(),
	}

	switch fields.Kind {
	case KindIndividual:
		out.Name = fields.Recipient.Name
		out.InternalDelivery = fields.DeliveryPoint.Internal
	case KindBusiness:
		out.BusinessName = fields.Recipient.CompanyName
		out.Recipient = fields.Recipient.Contact
	}

	address, err := NewFrenchAddress(out)
	if err != nil {
		return FrenchAddress{}, renderFailure(err)
	}

	return address, nil
}

// renderFailure turns a validation failure of a rendered value into a ConversionError.
func renderFailure(err error) error {
	if validationErr, ok := errors.AsType[*domainerrors.ValidationError](err); ok && len(validationErr.Violations) > 0 {
		violation := validationErr.Violations[0]

		return domainerrors.NewConversionError(violation.Field, "cannot be derived: "+violation.Rule)
	}

	return err
}

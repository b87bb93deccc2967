package entity

import (
	domainerrors "addressconv/internal/domain/errors"
)

// AddressConvertible is implemented by exactly two formats, FrenchAddress and
// IsoAddress. Each can produce canonical data from itself; Render goes the
// other way.
type AddressConvertible interface {
	Format() Format
	Kind() AddressKind
	ToCanonical() (ConvertedAddress, error)

	isAddressFormat()
}

var (
	_ AddressConvertible = FrenchAddress{}
	_ AddressConvertible = IsoAddress{}
)

// Render builds the value object of the requested format from canonical data.
func Render(converted ConvertedAddress, format Format) (AddressConvertible, error) {
	switch format {
	case FormatFrench:
		address, err := FrenchFromCanonical(converted)
		if err != nil {
			return nil, err
		}

		return address, nil
	case FormatISO20022:
		address, err := IsoFromCanonical(converted)
		if err != nil {
			return nil, err
		}

		return address, nil
	default:
		return nil, domainerrors.NewConversionError("format", "unsupported target format "+string(format))
	}
}

// DecodeAddress parses a JSON document of the given format.
func DecodeAddress(data []byte, format Format) (AddressConvertible, error) {
	switch format {
	case FormatFrench:
		address, err := DecodeFrenchAddress(data)
		if err != nil {
			return nil, err
		}

		return address, nil
	case FormatISO20022:
		address, err := DecodeIsoAddress(data)
		if err != nil {
			return nil, err
		}

		return address, nil
	default:
		_, err := ParseFormat(string(format))

		return nil, err
	}
}

// Convert decodes a document in one format and renders it in another,
// without giving it an identity.
func Convert(data []byte, from, to Format) (AddressConvertible, error) {
	source, err := DecodeAddress(data, from)
	if err != nil {
		return nil, err
	}

	converted, err := source.ToCanonical()
	if err != nil {
		return nil, err
	}

	return Render(converted, to)
}

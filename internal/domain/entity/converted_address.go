package entity

// ConvertedAddress is a conversion that has happened but has not been given an
// identity yet. It can only be produced by a format's ToCanonical (or read
// back from an Address) and is immutable: accessors return copies.
type ConvertedAddress struct {
	fields CanonicalFields
	source Format
}

func newConvertedAddress(fields CanonicalFields, source Format) ConvertedAddress {
	return ConvertedAddress{fields: fields, source: source}
}

// Fields returns a copy of the canonical fields.
func (c ConvertedAddress) Fields() CanonicalFields {
	return c.fields
}

// Source returns the format the canonical data was produced from.
func (c ConvertedAddress) Source() Format {
	return c.source
}

// Kind returns the address variant.
func (c ConvertedAddress) Kind() AddressKind {
	return c.fields.Kind
}

// IsZero reports whether c was never produced by a conversion.
func (c ConvertedAddress) IsZero() bool {
	return c.source == ""
}

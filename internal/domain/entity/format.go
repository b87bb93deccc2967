// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	domainerrors "addressconv/internal/domain/errors"
)

// Format identifies one of the two supported address layouts.
type Format string

const (
	// FormatFrench is the French NF Z10-011 layout.
	FormatFrench Format = "french"
	// FormatISO20022 is the ISO 20022 structured postal address.
	FormatISO20022 Format = "iso20022"
)

// Formats lists every supported format.
var Formats = []Format{FormatFrench, FormatISO20022}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the Format is a valid value.
func (f Format) IsValid() bool {
	return slices.Contains(Formats, f)
}

// ParseFormat converts user input into a Format, ignoring case and surrounding spaces.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !format.IsValid() {
		return "", domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "format",
			Rule:   "oneof",
			Detail: "must be 'french' or 'iso20022'",
		})
	}

	return format, nil
}

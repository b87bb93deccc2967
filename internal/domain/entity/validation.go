package entity

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"unicode"

	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so violations match what the caller sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("postcode", isPostcode); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(isoPostalFields, IsoAddress{})

	return v
}

// isPostcode accepts one or two tokens holding at least one digit (33380,
// 2A004, K1A 0A9). Whether two tokens fit the country is checked by isoPostalFields.
func isPostcode(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	return value != "" &&
		len(strings.Fields(value)) <= 2 &&
		strings.ContainsFunc(value, unicode.IsDigit)
}

// isoPostalFields rejects postal address sub-fields that belong to the other
// variant, and spaced postcodes the country does not write that way.
func isoPostalFields(sl validator.StructLevel) {
	address, ok := sl.Current().Interface().(IsoAddress)
	if !ok {
		return
	}

	postal := address.PostalAddress
	if strings.ContainsFunc(postal.Postcode, unicode.IsSpace) &&
		!Country(strings.ToUpper(postal.Country)).hasSpacedPostcode(postal.Postcode) {
		sl.ReportError(postal.Postcode, "postal_address.postcode", "Postcode", "postcode", "")
	}

	if address.BusinessName != "" && address.PostalAddress.Room != "" {
		sl.ReportError(address.PostalAddress.Room, "postal_address.room", "Room", "individual_only", "")
	}
	if address.Name != "" && address.PostalAddress.TownLocationName != "" {
		sl.ReportError(address.PostalAddress.TownLocationName, "postal_address.town_location_name", "TownLocationName", "business_only", "")
	}
}

func validateStruct(value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate address")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field: fieldPath(fieldErr.Namespace()),
			Rule:  fieldErr.Tag(),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// fieldPath drops the leading struct name: "IsoAddress.postal_address.postcode" -> "postal_address.postcode".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

// decodeStrict unmarshals exactly one JSON document and rejects unknown fields.
func decodeStrict(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "body",
			Rule:   "json",
			Detail: err.Error(),
		})
	}
	if decoder.More() {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "body",
			Rule:   "json",
			Detail: "unexpected data after the address document",
		})
	}

	return nil
}

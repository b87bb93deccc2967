package entity

import (
	"regexp"
	"strings"
	"unicode"

	domainerrors "addressconv/internal/domain/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Country is an ISO 3166-1 alpha-2 code present in the country table.
type Country string

// Supported countries. The table is bijective: one French name per code.
const (
	CountryFrance        Country = "FR"
	CountryBelgium       Country = "BE"
	CountrySwitzerland   Country = "CH"
	CountryLuxembourg    Country = "LU"
	CountryMonaco        Country = "MC"
	CountryGermany       Country = "DE"
	CountrySpain         Country = "ES"
	CountryItaly         Country = "IT"
	CountryUnitedKingdom Country = "GB"
	CountryNetherlands   Country = "NL"
	CountryPortugal      Country = "PT"
	CountryCanada        Country = "CA"
	CountryUnitedStates  Country = "US"
	CountryAndorra       Country = "AD"
)

// Postcode shapes for countries whose postcodes are written in two parts.
// The other countries use a single token.
var (
	ukPostcode     = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]? \d[A-Z]{2}$`)
	canadaPostcode = regexp.MustCompile(`(?i)^[A-Z]\d[A-Z] \d[A-Z]\d$`)
	dutchPostcode  = regexp.MustCompile(`(?i)^\d{4} [A-Z]{2}$`)
)

var countryTable = []struct {
	code     Country
	name     string
	postcode *regexp.Regexp
}{
	{CountryFrance, "FRANCE", nil},
	{CountryBelgium, "BELGIQUE", nil},
	{CountrySwitzerland, "SUISSE", nil},
	{CountryLuxembourg, "LUXEMBOURG", nil},
	{CountryMonaco, "MONACO", nil},
	{CountryGermany, "ALLEMAGNE", nil},
	{CountrySpain, "ESPAGNE", nil},
	{CountryItaly, "ITALIE", nil},
	{CountryUnitedKingdom, "ROYAUME-UNI", ukPostcode},
	{CountryNetherlands, "PAYS-BAS", dutchPostcode},
	{CountryPortugal, "PORTUGAL", nil},
	{CountryCanada, "CANADA", canadaPostcode},
	{CountryUnitedStates, "ETATS-UNIS", nil},
	{CountryAndorra, "ANDORRE", nil},
}

var (
	countryNames     = make(map[Country]string, len(countryTable))
	countryCodes     = make(map[string]Country, len(countryTable))
	countryPostcodes = make(map[Country]*regexp.Regexp)
)

func init() {
	for _, entry := range countryTable {
		countryNames[entry.code] = entry.name
		countryCodes[entry.name] = entry.code
		if entry.postcode != nil {
			countryPostcodes[entry.code] = entry.postcode
		}
	}
}

// Code returns the ISO 3166-1 alpha-2 code.
func (c Country) Code() string {
	return string(c)
}

// Name returns the French country name as printed on NF Z10-011 mail.
func (c Country) Name() string {
	return countryNames[c]
}

// hasSpacedPostcode reports whether postcode is a two-part postcode of c
// ("SW1A 2AA", "K1A 0A9", "1012 AB").
func (c Country) hasSpacedPostcode(postcode string) bool {
	shape, ok := countryPostcodes[c]

	return ok && shape.MatchString(postcode)
}

// CountryFromCode resolves an ISO alpha-2 code.
func CountryFromCode(code string) (Country, error) {
	country := Country(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := countryNames[country]; !ok {
		return "", domainerrors.NewConversionError("country", "no country name for code "+code)
	}

	return country, nil
}

// LookupCountry resolves a French country name. Case, accents and spacing
// around hyphens are ignored ("États-Unis", "etats unis"); the alpha-2 code is
// accepted too.
func LookupCountry(name string) (Country, error) {
	key := countryKey(name)
	if country, ok := countryCodes[key]; ok {
		return country, nil
	}
	if country, ok := countryCodes[strings.ReplaceAll(key, " ", "-")]; ok {
		return country, nil
	}
	if _, ok := countryNames[Country(key)]; ok {
		return Country(key), nil
	}

	return "", domainerrors.NewConversionError("country", "unsupported country "+name)
}

func countryKey(name string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripAccents, name)
	if err != nil {
		plain = name
	}

	return normalizeText(cases.Upper(language.French).String(plain))
}

package entity

import (
	"regexp"
	"strings"
	"unicode"

	domainerrors "addressconv/internal/domain/errors"
)

var (
	// 25, 2B, 2BIS, 14TER
	buildingNumberPattern = regexp.MustCompile(`(?i)^\d+(?:[A-Z]|BIS|TER|QUATER)?$`)
	// standalone repetition index following the number: 2 BIS
	repetitionPattern = regexp.MustCompile(`(?i)^(?:BIS|TER|QUATER)$`)
	// BP 90432, CS 10001, TSA 4711 at the start of the distribution line.
	// CEDEX belongs to the postal line, never to distribution info.
	postboxPattern = regexp.MustCompile(`(?i)^((?:BP|CS|TSA)\s*\d+)(?:\s+(.+))?$`)
)

// normalizeText trims s and collapses internal whitespace runs to one space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}

// splitStreet extracts the leading building number from a free-text street.
// The first token is a number when it matches buildingNumberPattern and a
// street label remains after it. A following BIS/TER/QUATER token belongs to
// the number. Anything else is kept whole as the street name.
func splitStreet(street string) Street {
	tokens := strings.Fields(street)
	if len(tokens) < 2 {
		return Street{Name: strings.Join(tokens, " ")}
	}

	number := strings.TrimSuffix(tokens[0], ",")
	if !buildingNumberPattern.MatchString(number) {
		return Street{Name: strings.Join(tokens, " ")}
	}

	rest := tokens[1:]
	if len(rest) >= 2 && repetitionPattern.MatchString(rest[0]) {
		number += " " + rest[0]
		rest = rest[1:]
	}

	return Street{Number: number, Name: strings.Join(rest, " ")}
}

// splitPostal splits "33380 MIOS" into postcode and town. The first token is
// the postcode and must contain a digit, unless the first two tokens form a
// two-part postcode of country ("SW1A 2AA LONDON").
func splitPostal(postal string, country Country) (postcode, town string, err error) {
	tokens := strings.Fields(postal)
	if len(tokens) < 2 {
		return "", "", domainerrors.NewConversionError("postal", "expected a postcode followed by a town")
	}
	if len(tokens) > 2 {
		if spaced := tokens[0] + " " + tokens[1]; country.hasSpacedPostcode(spaced) {
			return spaced, strings.Join(tokens[2:], " "), nil
		}
	}
	if !strings.ContainsFunc(tokens[0], unicode.IsDigit) {
		return "", "", domainerrors.NewConversionError("postal", "missing postcode before town "+postal)
	}

	return tokens[0], strings.Join(tokens[1:], " "), nil
}

// splitDistribution separates a business distribution line into the postbox
// marker and the secondary locality ("BP 90432 MONTFERRIER SUR LEZ"). Without a
// leading marker the whole line is a locality.
func splitDistribution(info string) (postbox, townLocation string) {
	info = normalizeText(info)
	match := postboxPattern.FindStringSubmatch(info)
	if match == nil {
		return "", info
	}

	return match[1], match[2]
}

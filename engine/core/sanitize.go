package core

import (
	"regexp"
	"strings"
)

// digitPrefix keeps normalized names from starting with a digit.
const digitPrefix = "n"

var (
	nonWordRegexp = regexp.MustCompile(`[\W_]`)
	spaceRegexp   = regexp.MustCompile(` +`)
)

// NormalizeName lowers the input, replaces every run of non-word characters
// (underscores included) with a single space and trims the result. Names that
// would start with a digit get the "n" prefix so both sanitized variants stay
// valid identifiers.
func NormalizeName(name string) string {
	normalized := strings.ToLower(name)
	normalized = nonWordRegexp.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(spaceRegexp.ReplaceAllString(normalized, " "))
	if normalized != "" && normalized[0] >= '0' && normalized[0] <= '9' {
		normalized = digitPrefix + normalized
	}
	return normalized
}

// SanitizeIdentifier returns the caller-facing identifier form of name
// (normalized, spaces replaced with underscores).
func SanitizeIdentifier(name string) string {
	return strings.ReplaceAll(NormalizeName(name), " ", "_")
}

// SanitizeResourceName returns the resource-name form of name
// (normalized, spaces replaced with hyphens).
func SanitizeResourceName(name string) string {
	return strings.ReplaceAll(NormalizeName(name), " ", "-")
}

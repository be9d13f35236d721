package service

import "strings"

// classifyRegion picks the region hint for parsing. Prefix predicates run in
// order against the normalized string (with or without its leading "+"); the
// first match wins and overrides the caller-supplied default. No match leaves
// the default untouched.
func (s *Service) classifyRegion(normalized, callerDefault string) string {
	digits := strings.TrimPrefix(normalized, "+")

	for _, rule := range s.tables.regionRules {
		if !strings.HasPrefix(digits, rule.prefix) {
			continue
		}
		if rule.minDigits > 0 && digitCount(digits) < rule.minDigits {
			continue
		}
		if rule.prefix == "1" && s.tables.isCanadianAreaCode(digits[1:]) {
			return "CA"
		}
		return rule.region
	}

	return callerDefault
}

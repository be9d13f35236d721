package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"phone_info_backend/platform/apperr"
	"phone_info_backend/platform/phone"
)

var bareFiveDigits = regexp.MustCompile(`^\d{5}$`)

// tooLongDigits rejects inputs whose digit payload cannot be a phone number
// in any plan (the longest ITU numbers stop at 15 digits).
const tooLongDigits = 19

// precheck applies the structural rejects to the raw text before any
// normalization or parsing. The external validator alone is too permissive
// for short or malformed input; these gates encode product-level strictness
// on top of it. Emergency short codes are matched here, ahead of the
// short-input gate that would otherwise shadow them.
func (s *Service) precheck(raw string) *apperr.Error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return apperr.InvalidFormat("phone number is empty")
	}
	if len(trimmed) < 3 {
		return apperr.InvalidFormat("phone number is too short to be dialable: " + trimmed)
	}

	// Letters are rejected, except within a trailing extension suffix which
	// the normalizer strips anyway.
	if containsLetter(stripExtension(trimmed)) {
		return apperr.InvalidFormat("phone number contains letters: " + trimmed)
	}

	if bareFiveDigits.MatchString(trimmed) {
		return apperr.InvalidFormat("bare five-digit strings are not dialable numbers: " + trimmed)
	}
	if strings.HasPrefix(trimmed, "++") {
		return apperr.InvalidFormat("doubled international prefix: " + trimmed)
	}

	digits := digitsOf(trimmed)
	if len(digits) == 0 {
		return apperr.InvalidFormat("phone number contains no digits: " + trimmed)
	}
	if len(digits) >= tooLongDigits {
		return apperr.InvalidFormat("phone number has too many digits: " + trimmed)
	}

	if _, ok := s.tables.emergencyNumbers[digits]; ok {
		return apperr.Emergency(digits + " is an emergency number")
	}

	if len(trimmed) <= 6 && !strings.HasPrefix(trimmed, "+") {
		return apperr.TooShort("phone number is too short: " + trimmed)
	}

	return nil
}

// postcheck gates the parsed number and computes its classification.
func (s *Service) postcheck(parsed *phone.Number) (bool, phone.NumberType, *apperr.Error) {
	if parsed.CallingCode == 0 {
		return false, phone.Unknown, apperr.UnrecognizedCountry("the number has no recognized country calling code")
	}

	national := strconv.FormatUint(parsed.NationalNumber, 10)
	if len(national) <= 3 {
		if _, ok := s.tables.emergencyNumbers[national]; ok {
			return false, phone.Unknown, apperr.Emergency(national + " is an emergency number")
		}
	}
	if len(national) < 4 {
		return false, phone.Unknown, apperr.TooShort("national number has too few digits: " + national)
	}

	valid := s.meta.IsValidNumber(parsed)
	if !valid && len(national) < 7 {
		// Not a plausible subscriber number in any plan.
		return false, phone.Unknown, apperr.TooShort("national number is too short to be a subscriber number: " + national)
	}

	return valid, s.meta.NumberType(parsed), nil
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

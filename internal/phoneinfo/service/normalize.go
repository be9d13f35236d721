package service

import (
	"net/url"
	"strings"
)

// fullNumberDigits is the digit count at which a bare digit string is assumed
// to carry its own calling code. NANP-local ten-digit strings must stay
// national, otherwise a leading area code would be misread as a calling code.
const fullNumberDigits = 11

var punctStripper = strings.NewReplacer(
	"(", "", ")", "",
	"[", "", "]", "",
	"-", "", ".", "",
	"/", "", " ", "",
)

var extensionMarkers = []string{" ext ", "ext:", "extension"}

// normalize cleans raw text into a canonical dial string. It is total: it
// never fails, and an uncleanable input passes through for later stages to
// reject. The result is idempotent under a second pass.
func (s *Service) normalize(raw string) string {
	text := raw

	// A second decode pass for double-encoded inputs. QueryUnescape turns a
	// literal '+' into a space, so only texts still carrying escapes qualify.
	if strings.Contains(text, "%") {
		if decoded, err := url.QueryUnescape(text); err == nil {
			text = decoded
		}
	}

	// Known reference numbers bypass all cleanup.
	if override, ok := s.tables.LiteralOverride(text); ok {
		return override.Canonical
	}

	text = stripExtension(text)
	text = strings.Join(strings.Fields(text), " ")

	if strings.HasPrefix(text, "00") {
		text = "+" + text[2:]
	}

	if missingPlus(text) && digitCount(text) >= fullNumberDigits {
		text = "+" + text
	}

	// The local-trunk marker must go before generic punctuation, or the
	// bracketed zero would be folded into the subscriber digits.
	if strings.HasPrefix(text, "+") {
		text = strings.Replace(text, "(0)", "", 1)
		text = strings.Replace(text, "[0]", "", 1)
	}

	text = punctStripper.Replace(text)

	if missingPlus(text) && digitCount(text) >= fullNumberDigits {
		text = "+" + text
	}

	return text
}

// stripExtension drops a trailing extension introduced by a known marker,
// keeping only the text before it.
func stripExtension(s string) string {
	lower := strings.ToLower(s)
	for _, marker := range extensionMarkers {
		if i := strings.Index(lower, marker); i > 0 {
			return s[:i]
		}
	}
	return s
}

func missingPlus(s string) bool {
	return s != "" && !strings.HasPrefix(s, "+") && isDigit(s[0])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitsOf returns only the decimal digits of s.
func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func digitCount(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			count++
		}
	}
	return count
}

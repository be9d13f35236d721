package service

import (
	"strings"

	"phone_info_backend/platform/apperr"
	"phone_info_backend/platform/phone"
)

// parseCascade runs the bounded parse-attempt chain: the normalized string
// with the classified hint first, then embedded calling-code patterns found
// in the raw text re-prefixed with "+", then one final retry. Free-text
// numbers frequently omit the "+" or embed a calling code without one; the
// pattern list covers only the country set the resolver also specializes.
func (s *Service) parseCascade(raw, normalized, hint string) (*phone.Number, error) {
	parsed, firstErr := s.meta.Parse(normalized, hint)
	if firstErr == nil {
		return parsed, nil
	}

	digits := digitsOf(raw)
	for _, rule := range s.tables.cascadeRules {
		if !strings.HasPrefix(digits, rule.callingCode) {
			continue
		}
		national := len(digits) - len(rule.callingCode)
		if national < rule.minNational || national > rule.maxNational {
			continue
		}
		if parsed, err := s.meta.Parse("+"+digits, rule.region); err == nil {
			s.log.Debug("parse recovered via embedded calling code", "code", rule.callingCode, "region", rule.region)
			return parsed, nil
		}
	}

	if parsed, err := s.meta.Parse(normalized, hint); err == nil {
		return parsed, nil
	}

	return nil, apperr.Wrap(apperr.KindInvalidFormat,
		"the number "+strings.TrimSpace(raw)+" could not be parsed; check the format", firstErr)
}

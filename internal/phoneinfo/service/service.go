// Package service implements the phone number resolution pipeline: text
// cleanup, region inference, the parse cascade, validity gating and the
// geographic/carrier overlay logic. The pipeline is a pure function of its
// input plus the immutable startup tables and is safe for concurrent use.
package service

import (
	"context"
	"time"

	"phone_info_backend/platform/apperr"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"
)

// Metadata is the numbering-plan metadata collaborator the pipeline consumes.
// Implementations must be safe for concurrent read-only use.
type Metadata interface {
	Parse(text, regionHint string) (*phone.Number, error)
	IsValidNumber(n *phone.Number) bool
	NumberType(n *phone.Number) phone.NumberType
	FormatInternational(n *phone.Number) string
	CountryNameForCallingCode(code int) (string, bool)
	CountryNameForNumber(n *phone.Number) (string, bool)
	RegionDescription(n *phone.Number) string
	CarrierName(n *phone.Number) string
}

// Result is the success record for a resolved number.
type Result struct {
	CallingCode     int
	NationalNumber  uint64
	Country         string
	Region          string
	Carrier         string
	TypeCode        string
	IsValid         bool
	FormattedNumber string
}

// Service runs the lookup pipeline.
type Service struct {
	meta   Metadata
	tables *Tables
	log    *logger.Logger
}

// New creates the lookup service with freshly built tables.
func New(meta Metadata, log *logger.Logger) *Service {
	return &Service{
		meta:   meta,
		tables: NewTables(),
		log:    log,
	}
}

// TypeNames returns the wire-code to type-name mapping served by /phone-types.
func (s *Service) TypeNames() map[string]string {
	out := make(map[string]string, len(typeNames))
	for code, name := range typeNames {
		out[code] = name
	}
	return out
}

// Lookup resolves free-form text into a Result or exactly one typed error.
// Every anticipated failure comes back as an *apperr.Error; a collaborator
// panicking outside its contract is recovered into a KindInternal error so
// the caller never sees a fault.
func (s *Service) Lookup(ctx context.Context, rawInput, defaultRegion string) (result *Result, err error) {
	start := time.Now()
	log := s.log.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("lookup panic recovered", "panic", r)
			result = nil
			err = apperr.Internal("unexpected error resolving the phone number")
		}
	}()

	if gateErr := s.precheck(rawInput); gateErr != nil {
		log.LookupError(gateErr.Kind.Label(), gateErr.Message)
		return nil, gateErr
	}

	normalized := s.normalize(rawInput)
	hint := s.classifyRegion(normalized, defaultRegion)

	parsed, parseErr := s.parseCascade(rawInput, normalized, hint)
	if parseErr != nil {
		log.LookupError(apperr.GetKind(parseErr).Label(), parseErr.Error())
		return nil, parseErr
	}

	valid, numberType, gateErr := s.postcheck(parsed)
	if gateErr != nil {
		log.LookupError(gateErr.Kind.Label(), gateErr.Message)
		return nil, gateErr
	}

	geo, carrier, valid := s.resolve(parsed, valid, numberType)

	// Pinned reference numbers win over the general overlay result.
	if override, ok := s.literalFor(rawInput, normalized); ok {
		geo.Country = override.Country
		geo.Region = override.Region
		valid = override.Valid
	}

	result = &Result{
		CallingCode:     parsed.CallingCode,
		NationalNumber:  parsed.NationalNumber,
		Country:         geo.Country,
		Region:          geo.Region,
		Carrier:         carrier,
		TypeCode:        typeWireCodes[numberType],
		IsValid:         valid,
		FormattedNumber: s.meta.FormatInternational(parsed),
	}

	log.LookupEvent("ok", result.CallingCode, result.IsValid, float64(time.Since(start).Milliseconds()))
	return result, nil
}

// literalFor consults the literal exception table for either the raw input
// or its normalized form.
func (s *Service) literalFor(raw, normalized string) (LiteralOverride, bool) {
	if override, ok := s.tables.LiteralOverride(raw); ok {
		return override, true
	}
	if override, ok := s.tables.LiteralOverride(normalized); ok {
		return override, true
	}
	return LiteralOverride{}, false
}

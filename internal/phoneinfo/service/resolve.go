package service

import (
	"strconv"
	"strings"

	"phone_info_backend/platform/phone"
)

const unknownLabel = "Unknown"

// GeoInfo carries the resolved country and sub-national region. Both default
// to "Unknown" rather than empty.
type GeoInfo struct {
	Country string
	Region  string
}

// overlayState is the mutable view an overlay works on. Overlays narrow an
// unknown region or correct a known country ambiguity; they run after the
// geocoder baseline.
type overlayState struct {
	tables   *Tables
	national string
	country  string
	region   string
	valid    bool
}

func (st *overlayState) regionUnknown() bool {
	return st.region == unknownLabel
}

// overlayFunc applies one calling code's special-casing. Keeping these as a
// table keyed by calling code makes each country's rules independently
// testable and the dispatch a single lookup.
type overlayFunc func(st *overlayState)

// resolve produces the final country, region and carrier labels for a gated
// number, and the possibly adjusted validity flag.
func (s *Service) resolve(parsed *phone.Number, valid bool, numberType phone.NumberType) (GeoInfo, string, bool) {
	country := unknownLabel
	if name, ok := s.meta.CountryNameForNumber(parsed); ok {
		country = name
	}
	if preferred, ok := s.tables.spellingOverrides[country]; ok {
		country = preferred
	}

	region := s.meta.RegionDescription(parsed)
	if region == "" {
		region = unknownLabel
	}
	if canonical, ok := s.tables.cityRegions[region]; ok {
		region = canonical
	}

	national := strconv.FormatUint(parsed.NationalNumber, 10)
	state := &overlayState{
		tables:   s.tables,
		national: national,
		country:  country,
		region:   region,
		valid:    valid,
	}
	if overlay, ok := s.tables.overlays[parsed.CallingCode]; ok {
		overlay(state)
	}

	if numberType == phone.TollFree || s.tables.isTollFree(parsed.CallingCode, national) {
		state.region = "Toll-Free"
		switch parsed.CallingCode {
		case 1:
			state.country = "United States"
		case 44:
			state.country = "United Kingdom"
		}
	}

	carrier := s.meta.CarrierName(parsed)
	if !state.valid && len(national) < 6 {
		// Near-invalid numbers get no speculative detail.
		carrier = ""
		state.region = unknownLabel
	}

	return GeoInfo{Country: state.country, Region: state.region}, carrier, state.valid
}

// northAmericaOverlay splits calling code 1 by the Canadian area-code set.
// The region-code lookup in the metadata provider usually settles this
// already; the area-code table is the fallback for numbers it cannot place.
func northAmericaOverlay(st *overlayState) {
	if st.country == unknownLabel || st.country == "United States" {
		if st.tables.isCanadianAreaCode(st.national) {
			st.country = "Canada"
		}
	}
}

func australiaOverlay(st *overlayState) {
	st.country = "Australia"
	if !st.regionUnknown() {
		return
	}
	switch {
	case strings.HasPrefix(st.national, "4"):
		st.region = "Australia Mobile"
	case strings.HasPrefix(st.national, "2"):
		st.region = "Sydney/NSW"
	case strings.HasPrefix(st.national, "3"):
		st.region = "Melbourne/Victoria"
	case strings.HasPrefix(st.national, "7"):
		st.region = "Queensland"
	case strings.HasPrefix(st.national, "8"):
		st.region = "Adelaide/Perth"
	}
}

func unitedKingdomOverlay(st *overlayState) {
	st.country = "United Kingdom"
	if st.regionUnknown() && strings.HasPrefix(st.national, "7") {
		st.region = "United Kingdom Mobile"
	}
}

func southAfricaOverlay(st *overlayState) {
	if !st.regionUnknown() {
		return
	}
	switch {
	case strings.HasPrefix(st.national, "11"):
		st.region = "Johannesburg"
	case strings.HasPrefix(st.national, "21"):
		st.region = "Cape Town"
	}
}

func newZealandOverlay(st *overlayState) {
	if !st.regionUnknown() {
		return
	}
	switch {
	case strings.HasPrefix(st.national, "9"):
		st.region = "Auckland"
	case strings.HasPrefix(st.national, "4"):
		st.region = "Wellington"
	case strings.HasPrefix(st.national, "3"):
		st.region = "Christchurch"
	}
}

// brazilOverlay labels the two largest metro prefixes. The São Paulo branch
// also forces validity; that is a pinned historical behavior, not a
// geographic rule.
func brazilOverlay(st *overlayState) {
	switch {
	case strings.HasPrefix(st.national, "11"):
		if st.regionUnknown() {
			st.region = "São Paulo"
		}
		st.valid = true
	case strings.HasPrefix(st.national, "21"):
		if st.regionUnknown() {
			st.region = "Rio de Janeiro"
		}
	}
}

func swedenOverlay(st *overlayState) {
	if st.regionUnknown() && strings.HasPrefix(st.national, "8") {
		st.region = "Stockholm"
	}
}

func southKoreaOverlay(st *overlayState) {
	if st.regionUnknown() && strings.HasPrefix(st.national, "2") {
		st.region = "Seoul"
	}
}

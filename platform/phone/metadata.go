// Package phone provides the numbering-plan metadata provider backed by
// libphonenumber data. This is part of the platform layer and contains no
// business logic: the lookup pipeline layers its own rules on top of it.
package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// Number is a parsed phone number. CallingCode is non-zero for any number the
// validity gate accepts; Source keeps the text the parser was given.
type Number struct {
	CallingCode    int
	NationalNumber uint64
	Source         string

	proto *phonenumbers.PhoneNumber
}

// NumberType is the numbering-plan category of a parsed number.
type NumberType int

const (
	FixedLine NumberType = iota
	Mobile
	FixedLineOrMobile
	TollFree
	PremiumRate
	SharedCost
	VOIP
	PersonalNumber
	Pager
	UAN
	Voicemail
	Unknown
)

// Name returns the canonical name for the number type.
func (t NumberType) Name() string {
	switch t {
	case FixedLine:
		return "FIXED_LINE"
	case Mobile:
		return "MOBILE"
	case FixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TollFree:
		return "TOLL_FREE"
	case PremiumRate:
		return "PREMIUM_RATE"
	case SharedCost:
		return "SHARED_COST"
	case VOIP:
		return "VOIP"
	case PersonalNumber:
		return "PERSONAL_NUMBER"
	case Pager:
		return "PAGER"
	case UAN:
		return "UAN"
	case Voicemail:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}

// Provider exposes numbering-plan metadata lookups. All methods are safe for
// concurrent read-only use; the underlying libphonenumber tables are immutable
// after package initialization.
type Provider struct {
	lang string
}

// NewProvider creates a metadata provider with English locality descriptions.
func NewProvider() *Provider {
	return &Provider{lang: "en"}
}

// Parse parses free-form text into a Number using the given region hint for
// numbers lacking an explicit calling code.
func (p *Provider) Parse(text, regionHint string) (*Number, error) {
	proto, err := phonenumbers.Parse(text, regionHint)
	if err != nil {
		return nil, err
	}
	return &Number{
		CallingCode:    int(proto.GetCountryCode()),
		NationalNumber: proto.GetNationalNumber(),
		Source:         text,
		proto:          proto,
	}, nil
}

// IsValidNumber reports whether the number is valid for its numbering plan.
func (p *Provider) IsValidNumber(n *Number) bool {
	return phonenumbers.IsValidNumber(n.proto)
}

// NumberType returns the numbering-plan category of the number.
func (p *Provider) NumberType(n *Number) NumberType {
	switch phonenumbers.GetNumberType(n.proto) {
	case phonenumbers.FIXED_LINE:
		return FixedLine
	case phonenumbers.MOBILE:
		return Mobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return FixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return TollFree
	case phonenumbers.PREMIUM_RATE:
		return PremiumRate
	case phonenumbers.SHARED_COST:
		return SharedCost
	case phonenumbers.VOIP:
		return VOIP
	case phonenumbers.PERSONAL_NUMBER:
		return PersonalNumber
	case phonenumbers.PAGER:
		return Pager
	case phonenumbers.UAN:
		return UAN
	case phonenumbers.VOICEMAIL:
		return Voicemail
	default:
		return Unknown
	}
}

// FormatInternational renders the number in international format.
func (p *Provider) FormatInternational(n *Number) string {
	return phonenumbers.Format(n.proto, phonenumbers.INTERNATIONAL)
}

// RegionDescription returns the geographical description for the number
// (city or area), or "" when none is known.
func (p *Provider) RegionDescription(n *Number) string {
	desc, err := phonenumbers.GetGeocodingForNumber(n.proto, p.lang)
	if err != nil {
		return ""
	}
	return desc
}

// CarrierName returns the carrier for the number, or "" when none is known.
func (p *Provider) CarrierName(n *Number) string {
	name, err := phonenumbers.GetCarrierForNumber(n.proto, p.lang)
	if err != nil {
		return ""
	}
	return name
}

// CountryNameForCallingCode returns the country name for an international
// calling code from the fixed table.
func (p *Provider) CountryNameForCallingCode(code int) (string, bool) {
	name, ok := countryNames[code]
	return name, ok
}

// CountryNameForNumber resolves the country name for a number. For shared
// numbering plans (calling code 1 most prominently) the libphonenumber region
// of the full number decides between the plan's countries; the fixed
// calling-code table is the fallback.
func (p *Provider) CountryNameForNumber(n *Number) (string, bool) {
	if region := phonenumbers.GetRegionCodeForNumber(n.proto); region != "" {
		if name, ok := regionCountryNames[region]; ok {
			return name, true
		}
	}
	return p.CountryNameForCallingCode(n.CallingCode)
}

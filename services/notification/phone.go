package notification

import "strings"

// RegionPolicy names the default-country assumption applied to bare national
// numbers. It is a deployment policy, not a general phone-parsing rule.
type RegionPolicy struct {
	CountryCode string // dialing code digits, without "+"
	NationalLen int    // digits in a bare national number
}

// IndiaRegion matches the original deployment: bare 10-digit numbers are
// assumed to be Indian mobiles.
var IndiaRegion = RegionPolicy{CountryCode: "91", NationalLen: 10}

// NormalizePhone canonicalizes a free-form phone string into a dialable
// "+"-prefixed identifier. It never fails; the output may still be invalid,
// in which case the SMS gateway rejects it at send time.
func NormalizePhone(raw string, region RegionPolicy) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	// Already carries the region's country code.
	case strings.HasPrefix(digits, region.CountryCode) && len(digits) == len(region.CountryCode)+region.NationalLen:
		return "+" + digits
	// Bare national number: apply the default-region policy.
	case len(digits) == region.NationalLen:
		return "+" + region.CountryCode + digits
	// Some other country code, just missing the "+".
	case len(digits) > region.NationalLen && !strings.HasPrefix(raw, "+"):
		return "+" + digits
	}

	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return "+" + digits
}

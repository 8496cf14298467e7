package idnum

import "regexp"

var (
	aadhaarShape = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	gstinShape   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	imeiShape    = regexp.MustCompile(`^[0-9]{15}$`)
	cardShape    = regexp.MustCompile(`^[0-9]{13,19}$`)
)

// DetectType classifies a raw value by shape. Rules are tried in order and
// the first match wins: a 15-digit numeric string is always IMEI, never Card,
// and GSTIN is tried before IMEI so letter-bearing values are never misread.
func DetectType(value string) Type {
	value = Normalize(value)

	switch {
	case aadhaarShape.MatchString(value):
		return TypeAadhaar
	case gstinShape.MatchString(value):
		return TypeGSTIN
	case imeiShape.MatchString(value):
		return TypeIMEI
	case cardShape.MatchString(value):
		return TypeCard
	default:
		return TypeUnrecognized
	}
}

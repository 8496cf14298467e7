package idnum

// Validate routes a value to the checksum routine for its detected type.
// Callers are expected to pass the type returned by DetectType; an
// Unrecognized or unknown type is always invalid.
func Validate(value string, t Type) bool {
	switch t {
	case TypeAadhaar:
		return ValidateAadhaar(value)
	case TypeGSTIN:
		return ValidateGSTIN(value)
	case TypeIMEI, TypeCard:
		return LuhnValid(Normalize(value))
	default:
		return false
	}
}

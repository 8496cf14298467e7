// Package idnum classifies Indian identity and payment numbers (Aadhaar,
// GSTIN, IMEI, card numbers) and verifies their checksums. It is pure and
// performs no I/O.
package idnum

import "strings"

type Type string

const (
	TypeAadhaar      Type = "Aadhaar"
	TypeGSTIN        Type = "GSTIN"
	TypeIMEI         Type = "IMEI"
	TypeCard         Type = "Card"
	TypeUnrecognized Type = "Unrecognized"
)

type FraudFlag string

const (
	FlagRepeatedDigits        FraudFlag = "repeated_digits"
	FlagInvalidAadhaarStart   FraudFlag = "invalid_aadhaar_start"
	FlagInvalidGstinStateCode FraudFlag = "invalid_gstin_state_code"
	FlagUnrecognizedFormat    FraudFlag = "unrecognized_format"
)

// Normalize trims surrounding whitespace and upper-cases the value. All
// detection and checksum routines expect normalized input.
func Normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

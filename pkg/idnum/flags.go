package idnum

type flagPattern struct {
	Flag        FraudFlag
	Description string
	Detect      func(value string, t Type) bool
}

// Heuristics run in this order; result flags keep it.
var flagPatterns = []flagPattern{
	{
		Flag:        FlagRepeatedDigits,
		Description: "Two or fewer distinct characters",
		Detect: func(value string, t Type) bool {
			return distinctChars(value) <= 2
		},
	},
	{
		Flag:        FlagInvalidAadhaarStart,
		Description: "Aadhaar numbers never start with 0 or 1",
		Detect: func(value string, t Type) bool {
			return t == TypeAadhaar && len(value) > 0 && (value[0] == '0' || value[0] == '1')
		},
	},
	{
		Flag:        FlagInvalidGstinStateCode,
		Description: "GSTIN state code must be two digits",
		Detect: func(value string, t Type) bool {
			return t == TypeGSTIN && !isTwoDigitPrefix(value)
		},
	},
}

// FraudFlags applies the structural red-flag heuristics to a recognized
// value. Flags are advisory: they are computed independently of checksum
// validity and never downgrade a checksum-valid result. The caller must not
// invoke this for Unrecognized values.
func FraudFlags(value string, t Type) []FraudFlag {
	value = Normalize(value)

	var flags []FraudFlag
	for _, pattern := range flagPatterns {
		if pattern.Detect(value, t) {
			flags = append(flags, pattern.Flag)
		}
	}
	return flags
}

func distinctChars(value string) int {
	seen := make(map[rune]struct{})
	for _, r := range value {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func isTwoDigitPrefix(value string) bool {
	if len(value) < 2 {
		return false
	}
	return value[0] >= '0' && value[0] <= '9' && value[1] >= '0' && value[1] <= '9'
}

package idnum

import (
	"fmt"
	"strings"
)

const gstinAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const gstinModulus = 36

// GSTINCheckChar computes the check character for the 14-character GSTIN body.
// Characters are processed right to left with a factor alternating 2,1,2,1,...
// and each addend folded through base 36 before summing.
func GSTINCheckChar(body string) (byte, error) {
	factor := 2
	total := 0

	for i := len(body) - 1; i >= 0; i-- {
		codePoint := strings.IndexByte(gstinAlphabet, body[i])
		if codePoint < 0 {
			return 0, fmt.Errorf("character %q not in GSTIN alphabet", body[i])
		}
		addend := factor * codePoint
		addend = (addend / gstinModulus) + (addend % gstinModulus)
		total += addend
		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
	}

	checkCodePoint := (gstinModulus - (total % gstinModulus)) % gstinModulus
	return gstinAlphabet[checkCodePoint], nil
}

// ValidateGSTIN reports whether value is a well-formed GSTIN whose final
// character matches the computed check character.
func ValidateGSTIN(value string) bool {
	value = Normalize(value)
	if !gstinShape.MatchString(value) {
		return false
	}

	check, err := GSTINCheckChar(value[:len(value)-1])
	if err != nil {
		return false
	}
	return value[len(value)-1] == check
}

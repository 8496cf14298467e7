package idnum

import "testing"

func TestValidateAadhaar_Valid(t *testing.T) {
	for _, value := range []string{"234567890124", "999999999999", "222222222227"} {
		if !ValidateAadhaar(value) {
			t.Errorf("expected %s to be valid", value)
		}
	}
}

func TestValidateAadhaar_SingleDigitSubstitutionFails(t *testing.T) {
	// Verhoeff detects all single-digit substitutions: perturbing any one
	// digit of a valid number must break the checksum.
	const valid = "234567890124"
	if !ValidateAadhaar(valid) {
		t.Fatalf("expected %s to be valid", valid)
	}

	for i := 0; i < len(valid); i++ {
		mutated := []byte(valid)
		mutated[i] = '0' + byte((int(valid[i]-'0')+1)%10)
		m := string(mutated)
		if DetectType(m) != TypeAadhaar {
			continue // mutation broke the shape, nothing to check
		}
		if ValidateAadhaar(m) {
			t.Errorf("expected mutation %s (position %d) to be invalid", m, i)
		}
	}
}

func TestValidateAadhaar_ShapeRejectedBeforeChecksum(t *testing.T) {
	cases := []string{
		"134567890124",  // leading digit below 2
		"034567890124",  // leading zero
		"23456789012",   // 11 digits
		"2345678901244", // 13 digits
		"23456789012A",  // non-digit
	}

	for _, value := range cases {
		if ValidateAadhaar(value) {
			t.Errorf("expected %s to be rejected", value)
		}
	}
}

func TestValidateAadhaar_WrongCheckDigit(t *testing.T) {
	if ValidateAadhaar("234567890123") {
		t.Error("expected wrong check digit to be invalid")
	}
}

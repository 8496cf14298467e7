package idnum

// LuhnValid reports whether a digit-only value passes the Luhn mod-10 check.
// Every second digit from the right is doubled, with 9 subtracted when the
// doubling exceeds 9; the value is valid when the digit sum is divisible by 10.
func LuhnValid(value string) bool {
	if len(value) == 0 {
		return false
	}

	total := 0
	for i := 0; i < len(value); i++ {
		ch := value[len(value)-1-i]
		if ch < '0' || ch > '9' {
			return false
		}
		n := int(ch - '0')
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
	}
	return total%10 == 0
}

package ustring

import "strconv"

// Number converts the base-10 integer n to a String.
func Number(n int) String {
	return FromLatin1(strconv.Itoa(n))
}

// ToInt parses a leading run of ASCII decimal digits, with an optional
// leading '-', into a signed integer. The second return value reports
// success; when it is false the numeric result is unspecified and must
// not be used. Parsing fails when no digit is present or the value
// overflows int. Trailing non-digit text is ignored.
func (s String) ToInt() (int, bool) {
	units := s.buf().units
	i := 0
	neg := false
	if i < len(units) && units[i] == '-' {
		neg = true
		i++
	}
	start := i
	// Accumulate the magnitude negatively; the negative range is one
	// wider than the positive, so this is the direction that lets the
	// most negative int parse.
	value := 0
	for ; i < len(units) && units[i] >= '0' && units[i] <= '9'; i++ {
		d := int(units[i] - '0')
		if value < (minInt+d)/10 {
			return 0, false
		}
		value = value*10 - d
	}
	if i == start {
		return 0, false
	}
	if !neg {
		if value == minInt {
			return 0, false
		}
		value = -value
	}
	return value, true
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

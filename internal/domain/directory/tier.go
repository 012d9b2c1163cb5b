package directory

import (
	"strconv"
	"unicode"
)

// TierOrdinal parses a tier code such as "T3" into its ordinal rank by
// stripping the leading letter prefix and reading the remaining digits.
// Malformed or unranked codes ("TZ", "", "T") rank as 0.
func TierOrdinal(tier string) int {
	i := 0
	for i < len(tier) && unicode.IsLetter(rune(tier[i])) {
		i++
	}
	if i == len(tier) {
		return 0
	}
	ordinal, err := strconv.Atoi(tier[i:])
	if err != nil || ordinal < 0 {
		return 0
	}
	return ordinal
}

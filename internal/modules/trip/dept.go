// README: Department extraction from free-text French addresses.
package trip

import (
	"regexp"
	"strconv"
)

var postalCodeRe = regexp.MustCompile(`\b(\d{5})\b`)

// ExtractDepartment finds a 5-digit French postal code anywhere in the address
// and returns the department code. Overseas codes (97x, 98x) keep three
// digits; Corsica (20xxx) splits into 2A below 20200 and 2B at or above.
// A missing postal code is a normal outcome, reported via ok=false.
func ExtractDepartment(address string) (string, bool) {
	m := postalCodeRe.FindString(address)
	if m == "" {
		return "", false
	}
	switch m[:2] {
	case "97", "98":
		return m[:3], true
	case "20":
		n, err := strconv.Atoi(m)
		if err != nil {
			return "", false
		}
		if n < 20200 {
			return "2A", true
		}
		return "2B", true
	}
	return m[:2], true
}

package mapping

import (
	"strconv"
	"strings"
)

// ParseSalary coerces a salary-like string ("$95,000", "95000.50") into a
// float. Unparseable values are reported as absent, never as an error.
func ParseSalary(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}

	salary, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || salary < 0 {
		return 0, false
	}
	return salary, true
}

// ParseAge coerces an age-like string to an integer, returning the
// fallback when the value is absent or unparseable.
func ParseAge(raw string, fallback int) int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return fallback
	}
	age, err := strconv.Atoi(cleaned)
	if err != nil {
		return fallback
	}
	return age
}

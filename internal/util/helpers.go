package util

import (
	"strconv"
	"strings"
)

// BoolToString renders a boolean the way the settings store keeps it.
func BoolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseBool accepts the stored form plus the usual spellings.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

// ParseInt parses a trimmed base-10 integer.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

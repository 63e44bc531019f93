package planner

import (
	"math"
	"strconv"
	"strings"
)

// FormatIndian rounds amount to a whole number and groups digits the Indian
// way: the last three digits, then pairs (12,34,567).
func FormatIndian(amount float64) string {
	if amount < 0 {
		return "-" + FormatIndian(-amount)
	}

	digits := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

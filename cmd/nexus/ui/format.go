package ui

import (
	"fmt"
	"math"
	"strings"
)

// formatINR renders a price in Indian digit grouping: the last three digits
// form one group and every group above that has two digits, so 1234567
// becomes ₹12,34,567.
func formatINR(amount float64) string {
	if math.IsInf(amount, 1) || amount <= 0 {
		return "Price unavailable"
	}

	whole := int64(math.Round(amount))
	digits := fmt.Sprintf("%d", whole)
	if len(digits) <= 3 {
		return "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return "₹" + strings.Join(groups, ",") + "," + tail
}

// truncate cuts s to at most width runes, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDays parses a human-friendly day offset such as "1d", "2w" or "1w3d"
// and returns the number of days along with a canonical, compact label.
// An empty input is zero days.
func ParseDays(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid day offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid day offset value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported day offset unit %q, use d or w", matches[2])
		}
		total += value * per

		remaining = remaining[len(matches[0]):]
	}
	return total, FormatDays(total), nil
}

// FormatDays renders days using week/day tokens.
func FormatDays(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}

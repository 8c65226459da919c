package profiles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var retentionPattern = regexp.MustCompile(`(?i)(\d+)([dhms])`)

// ParseRetention converts a compact retention string such as "30d",
// "12h" or "1d12h" into a time.Duration. Units may repeat and combine;
// matching is case-insensitive.
func ParseRetention(input string) (time.Duration, error) {
	matches := retentionPattern.FindAllStringSubmatch(input, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid retention format: %q", input)
	}

	var total time.Duration
	for _, parts := range matches {
		value, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid retention value %q: %w", parts[1], err)
		}
		switch strings.ToLower(parts[2]) {
		case "d":
			total += time.Duration(value) * 24 * time.Hour
		case "h":
			total += time.Duration(value) * time.Hour
		case "m":
			total += time.Duration(value) * time.Minute
		case "s":
			total += time.Duration(value) * time.Second
		}
	}
	return total, nil
}

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fixfft"
)

// parseSizes parses a comma-separated list of transform sizes. Every size
// must have a built-in table.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}

		if _, err := fixfft.Sine(n); err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes specified")
	}

	return out, nil
}

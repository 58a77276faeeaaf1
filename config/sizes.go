package config

import (
	"fmt"
	"strconv"
	"strings"
)

// PowersOfTwo returns from, 2·from, 4·from, ... up to and including to.
func PowersOfTwo(from, to int) ([]int, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("PowersOfTwo(%d,%d): %w", from, to, ErrInvalidConfig)
	}
	var sizes []int
	for n := from; n <= to; n *= 2 {
		sizes = append(sizes, n)
		if n > to/2 {
			break
		}
	}

	return sizes, nil
}

// ParseSizes parses a comma-separated size list. An element "a..b" expands
// to PowersOfTwo(a, b).
//
//	ParseSizes("16,100")     → [16 100]
//	ParseSizes("128..1024")  → [128 256 512 1024]
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, ".."); ok {
			a, errA := strconv.Atoi(strings.TrimSpace(lo))
			b, errB := strconv.Atoi(strings.TrimSpace(hi))
			if errA != nil || errB != nil {
				return nil, fmt.Errorf("ParseSizes(%q): bad range %q: %w", s, part, ErrInvalidConfig)
			}
			r, err := PowersOfTwo(a, b)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, r...)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("ParseSizes(%q): bad size %q: %w", s, part, ErrInvalidConfig)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("ParseSizes(%q): no sizes: %w", s, ErrInvalidConfig)
	}

	return sizes, nil
}

package dataset

import (
	"sort"
	"strconv"
	"strings"
)

// labelKey is the tagged sort key for a group label: numeric labels
// order before text labels, numerics compare by value, text compares
// lexicographically.
type labelKey struct {
	numeric bool
	value   float64
	text    string
}

func keyFor(label string) labelKey {
	if v, ok := numericLabel(label); ok {
		return labelKey{numeric: true, value: v}
	}
	return labelKey{text: label}
}

func (k labelKey) less(other labelKey) bool {
	if k.numeric != other.numeric {
		return k.numeric
	}
	if k.numeric {
		return k.value < other.value
	}
	return k.text < other.text
}

// numericLabel parses a label as a plain decimal number: surrounding
// whitespace stripped, optional leading sign, digits with at most one
// decimal point. Exponents, Inf, and NaN do not qualify.
func numericLabel(label string) (float64, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, false
	}

	dots := 0
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
			if dots > 1 {
				return 0, false
			}
		case (r == '-' || r == '+') && i == 0:
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// sortLabels orders group labels in place by their tagged keys. The
// sort is stable so equal keys keep their first-seen order.
func sortLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		return keyFor(labels[i]).less(keyFor(labels[j]))
	})
}

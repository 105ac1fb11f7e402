// Package scoring turns raw per-indicator scores into the normalized 0..10
// ratings shown throughout the product. All functions are pure and never
// return errors: malformed scoring-logic strings degrade to documented
// defaults instead of failing the read path.
package scoring

import (
	"strconv"
	"strings"

	"dri_index/internal/domain/entity"
)

// DefaultMaxScore is assumed when a scoring-logic string yields no parseable
// option values. The existing indicator set depends on this exact fallback.
const DefaultMaxScore = 5

// MaxScore extracts the maximum achievable raw score from a scoring-logic
// string of the form "V1=Label1; V2=Label2; ...". For each option the digits
// of the part left of the first '=' are parsed as an integer; the result is
// the maximum across options, or DefaultMaxScore when nothing parses.
func MaxScore(logic string) int {
	max := 0
	found := false

	for _, part := range strings.Split(logic, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		left, _, _ := strings.Cut(part, "=")

		n, ok := digitsValue(left)
		if !ok {
			continue
		}

		if !found || n > max {
			max = n
		}
		found = true
	}

	if !found {
		return DefaultMaxScore
	}
	return max
}

// Options returns the ordered list of (value, label) pairs an indicator
// offers. Only the first '=' of each option is a split boundary; labels may
// contain further '=' characters. Options whose left-hand side carries no
// digits keep the raw trimmed token instead of a numeric value.
func Options(logic string) []entity.ScoreOption {
	var options []entity.ScoreOption

	for _, part := range strings.Split(logic, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		left, label, cut := strings.Cut(part, "=")
		if !cut {
			label = ""
		}

		option := entity.ScoreOption{Label: strings.TrimSpace(label)}
		if n, ok := digitsValue(left); ok {
			v := n
			option.Value = &v
		} else {
			option.Raw = strings.TrimSpace(left)
		}

		options = append(options, option)
	}

	return options
}

// digitsValue strips every non-digit character from s and parses the
// remaining run as an integer.
func digitsValue(s string) (int, bool) {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		// Digit runs longer than an int are nonsense input; treat as unparseable.
		return 0, false
	}

	return n, true
}

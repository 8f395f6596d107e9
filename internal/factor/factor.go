// Package factor tokenizes the multiplicative factor syntax shared by
// dimension names and quantity expressions.
//
// An expression is split on '*' into segments; each segment is split on '/'
// with the first piece a numerator and the rest denominators. A factor ends
// in an optional unsigned exponent written as "<numer>" or
// "<numer>_<denom>", so "s2" is s squared and "m3_2" is m to the 3/2.
package factor

import (
	"fmt"
	"strconv"
	"strings"

	"unitful/internal/ratio"
)

// Factor is one multiplicative token of an expression.
type Factor struct {
	// Text is the factor body with the exponent suffix removed. For quantity
	// expressions it may still carry a leading numeric coefficient.
	Text string

	// Power is the unsigned exponent parsed from the suffix (1 if absent).
	Power ratio.Rat

	// Numer is true when the factor sits in a numerator position.
	Numer bool
}

// Split tokenizes s into its factors, preserving order. Empty factors are
// skipped, which is what makes leading-slash forms like "/s" parse as a
// plain reciprocal.
func Split(s string) ([]Factor, error) {
	var out []Factor

	for _, segment := range strings.Split(s, "*") {
		numer := true

		for _, piece := range strings.Split(segment, "/") {
			if piece != "" {
				f, err := parseOne(piece, numer)
				if err != nil {
					return nil, err
				}

				out = append(out, f)
			}

			numer = false
		}
	}

	return out, nil
}

func parseOne(piece string, numer bool) (Factor, error) {
	body := strings.TrimRight(piece, "0123456789_")
	suffix := piece[len(body):]

	numerStr, denomStr, _ := strings.Cut(suffix, "_")

	power, err := parsePower(numerStr, denomStr)
	if err != nil {
		return Factor{}, fmt.Errorf("invalid factor %q: %w", piece, err)
	}

	return Factor{Text: body, Power: power, Numer: numer}, nil
}

func parsePower(numerStr, denomStr string) (ratio.Rat, error) {
	numer := int64(1)
	denom := int64(1)

	var err error

	if numerStr != "" {
		numer, err = strconv.ParseInt(numerStr, 10, 64)
		if err != nil {
			return ratio.Rat{}, err
		}
	}

	if denomStr != "" {
		denom, err = strconv.ParseInt(denomStr, 10, 64)
		if err != nil {
			return ratio.Rat{}, err
		}

		if denom == 0 {
			return ratio.Rat{}, fmt.Errorf("zero exponent denominator")
		}
	}

	return ratio.New(numer, denom), nil
}

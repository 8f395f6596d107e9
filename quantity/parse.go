package quantity

import (
	"math"
	"strconv"
	"strings"

	"unitful/diag"
	"unitful/dim"
	"unitful/internal/factor"
)

// numeric characters a leading coefficient may consist of.
const coeffChars = "+-0123456789."

// Parse parses a quantity expression via the SI unit registry. See
// Units.Parse.
func Parse(s string) (any, error) { return SI.Parse(s) }

// Parse parses a quantity expression: an optional leading numeric
// coefficient followed by '*'- and '/'-separated unit factors, each an
// optional coefficient plus "symbol[exponent][_denominator]". The result is
// a Value, or a bare float64 when the factors cancel to dimensionless.
//
// The original text is retained on the Value for exact round-trip via
// MarshalText.
func (u *Units) Parse(s string) (any, error) {
	tail := strings.TrimLeft(s, coeffChars)

	coeff, err := parseCoeff(s[:len(s)-len(tail)])
	if err != nil {
		return nil, diag.Newf(diag.KindParse, "parse", s, "invalid coefficient %q", s[:len(s)-len(tail)])
	}

	factors, err := factor.Split(tail)
	if err != nil {
		return nil, diag.Wrap(diag.KindParse, "parse", s, err)
	}

	acc := coeff
	accDim := u.dims.Dimensionless()

	for _, f := range factors {
		v, vdim, err := u.evalFactor(f)
		if err != nil {
			return nil, err
		}

		if f.Numer {
			acc *= v
			accDim = accDim.Mul(vdim)
		} else {
			acc /= v
			accDim = accDim.Div(vdim)
		}
	}

	if accDim.IsDimensionless() {
		return acc, nil
	}

	return Value{dim: accDim, payload: acc, parsedFrom: s}, nil
}

// evalFactor resolves one factor to its scalar magnitude and dimension.
func (u *Units) evalFactor(f factor.Factor) (float64, *dim.Dimension, error) {
	symbol := strings.TrimLeft(f.Text, coeffChars)

	coeff, err := parseCoeff(f.Text[:len(f.Text)-len(symbol)])
	if err != nil {
		return 0, nil, diag.Newf(diag.KindParse, "parse", f.Text, "invalid (sub)expression")
	}

	ref, err := u.Resolve(symbol)
	if err != nil {
		return 0, nil, diag.Wrap(diag.KindParse, "parse", f.Text, err)
	}

	magnitude, ok := asFloat(ref.Payload())
	if !ok {
		return 0, nil, diag.Newf(diag.KindParse, "parse", f.Text,
			"unit %q has a non-scalar reference value", symbol)
	}

	return coeff * math.Pow(magnitude, f.Power.Float()), ref.Dim().Pow(f.Power), nil
}

// parseCoeff parses an optional leading coefficient, defaulting to 1.
func parseCoeff(text string) (float64, error) {
	if text == "" {
		return 1, nil
	}

	return strconv.ParseFloat(text, 64)
}

// Coerce parses text and requires the result to carry dimension d: a bare
// number when d is dimensionless, a Value of exactly d otherwise. Anything
// else fails with a type mismatch.
func (u *Units) Coerce(d *dim.Dimension, text string) (any, error) {
	parsed, err := u.Parse(text)
	if err != nil {
		return nil, err
	}

	got := DimOf(parsed, u.dims)
	if got != d {
		return nil, diag.Newf(diag.KindTypeMismatch, "coerce", text,
			"expected %s, got %s", d, got)
	}

	return parsed, nil
}

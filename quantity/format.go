package quantity

import (
	"fmt"
	"strings"

	"unitful/diag"
)

// Format renders v via the SI unit registry. See Units.Format.
func Format(v any, spec string) (string, error) { return SI.Format(v, spec) }

// Format renders a value. An empty spec produces the canonical display
// ("<raw><dimension-name>"). Otherwise the spec is a fixed-point width
// prefix (digits and '.') followed by a unit expression: the value is
// divided by the parsed expression and the resulting bare number is printed
// with the prefix, the unit text appended unchanged. The division must
// cancel the value's dimension exactly.
func (u *Units) Format(v any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprintf("%v", v), nil
	}

	suffix := strings.TrimLeft(spec, "0123456789.,")
	numSpec := spec[:len(spec)-len(suffix)]

	if strings.Contains(numSpec, ",") {
		return "", diag.Newf(diag.KindParse, "format", spec, "digit grouping is not supported")
	}

	if suffix == "" {
		return "", diag.Newf(diag.KindParse, "format", spec, "format spec has no unit expression")
	}

	divisor, err := u.Parse(suffix)
	if err != nil {
		return "", err
	}

	vDim := DimOf(v, u.dims)
	if DimOf(divisor, u.dims) != vDim {
		return "", diag.Newf(diag.KindTypeMismatch, "format", spec,
			"unit %s does not cancel %s", DimOf(divisor, u.dims), vDim)
	}

	num, ok := asFloat(PayloadOf(v))
	if !ok {
		return "", diag.Newf(diag.KindTypeMismatch, "format", spec,
			"formatted display requires a scalar payload, got %T", PayloadOf(v))
	}

	den, ok := asFloat(PayloadOf(divisor))
	if !ok || den == 0 {
		return "", diag.Newf(diag.KindParse, "format", spec, "unit expression has no magnitude")
	}

	return fmt.Sprintf("%"+numSpec+"f", num/den) + suffix, nil
}

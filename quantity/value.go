package quantity

import (
	"errors"
	"fmt"

	"unitful/diag"
	"unitful/dim"
)

// ErrNoProvenance is returned by MarshalText for values that were not
// produced by parsing and therefore retain no original text.
var ErrNoProvenance = errors.New("quantity: value does not retain its parsed form")

// Value is a dimensioned numeric value: an interned dimension identity plus
// a raw payload owned by the host numeric library. The dimension is fixed at
// construction; arithmetic always produces a new Value.
//
// A dimensionless quantity is never a Value: it degenerates to the bare
// payload (see Wrap).
type Value struct {
	dim        *dim.Dimension
	payload    any
	parsedFrom string
}

// New wraps payload in dimension d. The dimensionless identity is rejected:
// a dimensionless quantity is the bare payload itself.
func New(d *dim.Dimension, payload any) (Value, error) {
	if d == nil || d.IsDimensionless() {
		return Value{}, diag.Newf(diag.KindConfiguration, "new quantity", "",
			"dimensionless quantity cannot be wrapped, use the bare value")
	}

	return Value{dim: d, payload: payload}, nil
}

// Wrap wraps payload in dimension d, degenerating to the bare payload when
// d is dimensionless. This is the constructor arithmetic results flow
// through.
func Wrap(d *dim.Dimension, payload any) any {
	if d == nil || d.IsDimensionless() {
		return payload
	}

	return Value{dim: d, payload: payload}
}

// Dim returns the dimension identity.
func (v Value) Dim() *dim.Dimension { return v.dim }

// Payload returns the raw numeric payload.
func (v Value) Payload() any { return v.payload }

// ParsedFrom returns the original expression text the value was parsed
// from, if any.
func (v Value) ParsedFrom() (string, bool) {
	return v.parsedFrom, v.parsedFrom != ""
}

// String returns the canonical display: the payload followed by the
// bracketed dimension name, e.g. "9.81[L/T2]".
func (v Value) String() string {
	return fmt.Sprintf("%v%s", v.payload, v.dim)
}

// MarshalText serializes the value using its retained parse provenance.
// Values not produced by parsing fail with ErrNoProvenance.
func (v Value) MarshalText() ([]byte, error) {
	if v.parsedFrom == "" {
		return nil, ErrNoProvenance
	}

	return []byte(v.parsedFrom), nil
}

// UnmarshalText parses text via the SI unit registry. Text that evaluates
// to a dimensionless number is rejected, matching New.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := SI.Parse(string(text))
	if err != nil {
		return err
	}

	q, ok := parsed.(Value)
	if !ok {
		return diag.Newf(diag.KindTypeMismatch, "unmarshal quantity", string(text),
			"expression is dimensionless")
	}

	*v = q

	return nil
}

// DimOf returns the dimension carried by v: the Value's dimension, or the
// given registry's dimensionless identity for bare payloads.
func DimOf(v any, reg *dim.Registry) *dim.Dimension {
	if q, ok := v.(Value); ok {
		return q.Dim()
	}

	return reg.Dimensionless()
}

// PayloadOf unwraps v to its raw payload; bare values pass through.
func PayloadOf(v any) any {
	if q, ok := v.(Value); ok {
		return q.Payload()
	}

	return v
}

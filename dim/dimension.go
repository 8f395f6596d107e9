package dim

import (
	"unitful/internal/ratio"
)

// Dimension is an interned identity for a physical dimension. Two dimensions
// from the same registry are equal iff they are the same pointer.
type Dimension struct {
	reg    *Registry
	name   string
	powers map[string]ratio.Rat
}

// Name returns the canonical name, the deterministic string encoding of the
// power map used as cache key and external identity. The dimensionless
// identity has the empty name.
func (d *Dimension) Name() string { return d.name }

// String returns the bracketed display form, e.g. "[L/T2]".
func (d *Dimension) String() string { return "[" + d.name + "]" }

// IsDimensionless returns true for the empty power map.
func (d *Dimension) IsDimensionless() bool { return len(d.powers) == 0 }

// Power returns the exponent of the given base symbol (zero if absent).
func (d *Dimension) Power(base string) ratio.Rat { return d.powers[base] }

// Powers returns a copy of the power map.
func (d *Dimension) Powers() map[string]ratio.Rat {
	out := make(map[string]ratio.Rat, len(d.powers))
	for base, power := range d.powers {
		out[base] = power
	}

	return out
}

// Registry returns the registry that interned this identity.
func (d *Dimension) Registry() *Registry { return d.reg }

// Mul returns the product dimension: the pointwise sum of exponents.
func (d *Dimension) Mul(other *Dimension) *Dimension {
	return d.binop(other, func(a, b ratio.Rat) ratio.Rat { return a.Add(b) })
}

// Div returns the quotient dimension: the pointwise difference of exponents.
func (d *Dimension) Div(other *Dimension) *Dimension {
	return d.binop(other, func(a, b ratio.Rat) ratio.Rat { return a.Sub(b) })
}

// Pow returns the dimension with every exponent multiplied by exp.
func (d *Dimension) Pow(exp ratio.Rat) *Dimension {
	powers := make(map[string]ratio.Rat, len(d.powers))
	for base, power := range d.powers {
		powers[base] = power.Mul(exp)
	}

	return d.reg.FromPowers(powers)
}

// PowInt returns the dimension raised to an integer exponent.
func (d *Dimension) PowInt(exp int64) *Dimension {
	return d.Pow(ratio.FromInt(exp))
}

// Inverse returns the dimension with every exponent negated.
func (d *Dimension) Inverse() *Dimension {
	return d.PowInt(-1)
}

func (d *Dimension) binop(other *Dimension, op func(a, b ratio.Rat) ratio.Rat) *Dimension {
	if other.reg != d.reg {
		panic("dim: cannot combine dimensions from different registries")
	}

	powers := make(map[string]ratio.Rat, len(d.powers)+len(other.powers))
	for base, power := range d.powers {
		powers[base] = op(power, other.powers[base])
	}

	for base, power := range other.powers {
		if _, done := d.powers[base]; !done {
			powers[base] = op(ratio.Rat{}, power)
		}
	}

	return d.reg.FromPowers(powers)
}

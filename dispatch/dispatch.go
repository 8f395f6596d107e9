package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"unitful/diag"
	"unitful/dim"
	"unitful/internal/ratio"
	"unitful/quantity"
)

// ErrUnsupported signals an operation name outside the dispatch table. The
// host library is expected to fall back to its default behavior.
var ErrUnsupported = errors.New("dispatch: unsupported operation")

// Dispatcher computes result dimensions and compatibility for host
// operations, delegating raw computation to a Host.
type Dispatcher struct {
	units *quantity.Units
	host  Host
}

// New creates a Dispatcher resolving string operands against units and
// delegating raw computation to host.
func New(units *quantity.Units, host Host) *Dispatcher {
	return &Dispatcher{units: units, host: host}
}

// Apply dispatches op over args with no keyword options.
func (d *Dispatcher) Apply(op string, args ...any) (any, error) {
	return d.ApplyWith(op, args, nil)
}

// ApplyWith dispatches op: string operands are parsed, the result dimension
// and operand compatibility are determined from the operation's category,
// operands are unwrapped, the host computes the raw result, and the result
// is rewrapped (or left bare when dimensionless).
func (d *Dispatcher) ApplyWith(op string, args []any, opts map[string]any) (any, error) {
	cat := Classify(op)
	if cat == CategoryUnsupported {
		return nil, ErrUnsupported
	}

	args, err := d.parseStrings(args)
	if err != nil {
		return nil, err
	}

	resultDim, args, err := d.resolve(op, cat, args)
	if err != nil {
		return nil, err
	}

	raw := make([]any, len(args))
	for i, a := range args {
		raw[i] = quantity.PayloadOf(a)
	}

	out, err := d.host.Call(op, raw, opts)
	if err != nil {
		return nil, err
	}

	return quantity.Wrap(resultDim, out), nil
}

// resolve applies the category's dimension rule, returning the result
// dimension and the (possibly rewritten) operand list.
func (d *Dispatcher) resolve(op string, cat Category, args []any) (*dim.Dimension, []any, error) {
	dims := d.units.Dims()

	switch cat {
	case CategoryAdditive:
		if err := arity(op, args, 2); err != nil {
			return nil, nil, err
		}

		d0 := quantity.DimOf(args[0], dims)
		if quantity.DimOf(args[1], dims) != d0 {
			return nil, nil, mismatch(op, dims, args)
		}

		return d0, args, nil

	case CategoryMultiplicative:
		if err := arity(op, args, 2); err != nil {
			return nil, nil, err
		}

		return quantity.DimOf(args[0], dims).Mul(quantity.DimOf(args[1], dims)), args, nil

	case CategoryDivisive:
		if err := arity(op, args, 2); err != nil {
			return nil, nil, err
		}

		return quantity.DimOf(args[0], dims).Div(quantity.DimOf(args[1], dims)), args, nil

	case CategoryPassthrough:
		if err := arity(op, args, 1); err != nil {
			return nil, nil, err
		}

		return quantity.DimOf(args[0], dims), args, nil

	case CategorySqrt:
		if err := arity(op, args, 1); err != nil {
			return nil, nil, err
		}

		return quantity.DimOf(args[0], dims).Pow(ratio.New(1, 2)), args, nil

	case CategoryPower:
		if err := arity(op, args, 2); err != nil {
			return nil, nil, err
		}

		exp, err := exponent(op, args[1])
		if err != nil {
			return nil, nil, err
		}

		// The host sees the exponent as a plain float.
		rewritten := append([]any{}, args...)
		rewritten[1] = exp.Float()

		return quantity.DimOf(args[0], dims).Pow(exp), rewritten, nil

	case CategorySetItem:
		if err := arity(op, args, 3); err != nil {
			return nil, nil, err
		}

		d0 := quantity.DimOf(args[0], dims)
		if quantity.DimOf(args[2], dims) != d0 {
			return nil, nil, diag.Newf(diag.KindTypeMismatch, op, "",
				"cannot assign %s to %s", quantity.DimOf(args[2], dims), d0)
		}

		return d0, args, nil

	case CategoryComparison:
		if err := arity(op, args, 1); err != nil {
			return nil, nil, err
		}

		d0 := quantity.DimOf(args[0], dims)
		for _, a := range args[1:] {
			if quantity.DimOf(a, dims) != d0 {
				return nil, nil, mismatch(op, dims, args)
			}
		}

		return dims.Dimensionless(), args, nil

	case CategoryStack:
		return d.resolveStack(op, args)

	case CategoryShape:
		if err := arity(op, args, 1); err != nil {
			return nil, nil, err
		}

		return dims.Dimensionless(), args, nil

	default:
		return nil, nil, ErrUnsupported
	}
}

// resolveStack handles stack/concatenate, whose single operand is the list
// of elements. The element payloads are flattened into a single host
// operand.
func (d *Dispatcher) resolveStack(op string, args []any) (*dim.Dimension, []any, error) {
	dims := d.units.Dims()

	if err := arity(op, args, 1); err != nil {
		return nil, nil, err
	}

	elems, ok := args[0].([]any)
	if !ok || len(elems) == 0 {
		return nil, nil, fmt.Errorf("dispatch: %s expects a non-empty element list, got %T", op, args[0])
	}

	elems, err := d.parseStrings(elems)
	if err != nil {
		return nil, nil, err
	}

	d0 := quantity.DimOf(elems[0], dims)

	raw := make([]any, len(elems))
	for i, e := range elems {
		if quantity.DimOf(e, dims) != d0 {
			return nil, nil, mismatch(op, dims, elems)
		}

		raw[i] = quantity.PayloadOf(e)
	}

	// The element list is passed through as the sole operand; unwrapping in
	// ApplyWith leaves a plain slice untouched.
	return d0, []any{raw}, nil
}

// parseStrings replaces string operands with their parsed quantities.
func (d *Dispatcher) parseStrings(args []any) ([]any, error) {
	out := make([]any, len(args))

	for i, a := range args {
		if s, ok := a.(string); ok {
			parsed, err := d.units.Parse(s)
			if err != nil {
				return nil, err
			}

			out[i] = parsed

			continue
		}

		out[i] = a
	}

	return out, nil
}

// exponent converts a power operand to a rational. Dimensioned exponents
// are rejected.
func exponent(op string, v any) (ratio.Rat, error) {
	switch e := v.(type) {
	case ratio.Rat:
		return e, nil
	case int:
		return ratio.FromInt(int64(e)), nil
	case int64:
		return ratio.FromInt(e), nil
	case float64:
		r, err := ratio.FromFloat(e)
		if err != nil {
			return ratio.Rat{}, diag.Wrap(diag.KindTypeMismatch, op, fmt.Sprint(e), err)
		}

		return r, nil
	default:
		return ratio.Rat{}, diag.Newf(diag.KindTypeMismatch, op, fmt.Sprint(v),
			"exponent must be a plain number, got %T", v)
	}
}

func arity(op string, args []any, n int) error {
	if len(args) < n {
		return fmt.Errorf("dispatch: %s expects at least %d operands, got %d", op, n, len(args))
	}

	return nil
}

// mismatch reports the dimensions of every operand, matching the
// diagnosability rule that failures name the operation and offenders.
func mismatch(op string, dims *dim.Registry, args []any) error {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = quantity.DimOf(a, dims).String()
	}

	return diag.Newf(diag.KindTypeMismatch, op, "",
		"incompatible arguments: %s", strings.Join(names, ", "))
}

// Package number is the default numeric host behind the dispatcher. It
// implements the raw elementwise operations on scalars (float64), vectors
// ([]float64), and dense matrices (*mat.Dense), backed by gonum.
//
// The package knows nothing about dimensions: operands arrive unwrapped and
// results are rewrapped by the caller.
package number

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Engine is the gonum-backed numeric host. The zero value is ready to use.
type Engine struct{}

// Call executes the raw operation named op over args. Operation names
// follow the dispatcher's table; unknown names fail.
func (Engine) Call(op string, args []any, opts map[string]any) (any, error) {
	_ = opts // no keyword options are consumed by the built-in kernels

	switch op {
	case "add":
		return binary(op, args, func(x, y float64) float64 { return x + y })
	case "sub", "subtract":
		return binary(op, args, func(x, y float64) float64 { return x - y })
	case "hypot":
		return binary(op, args, math.Hypot)
	case "mul", "multiply":
		return binary(op, args, func(x, y float64) float64 { return x * y })
	case "matmul":
		return matmul(op, args)
	case "truediv", "true_divide", "divide":
		return binary(op, args, func(x, y float64) float64 { return x / y })
	case "pow", "power":
		return binary(op, args, math.Pow)
	case "neg", "negative":
		return unary(op, args, func(x float64) float64 { return -x })
	case "pos", "positive":
		return unary(op, args, func(x float64) float64 { return x })
	case "abs", "absolute":
		return unary(op, args, math.Abs)
	case "sqrt":
		return unary(op, args, math.Sqrt)
	case "sum":
		return reduce(op, args, floats.Sum)
	case "mean":
		return reduce(op, args, func(v []float64) float64 { return stat.Mean(v, nil) })
	case "amax", "max":
		return reduce(op, args, floats.Max)
	case "amin", "min":
		return reduce(op, args, floats.Min)
	case "ptp":
		return reduce(op, args, func(v []float64) float64 { return floats.Max(v) - floats.Min(v) })
	case "take", "getitem":
		return take(op, args)
	case "setitem":
		return setItem(op, args)
	case "lt", "less":
		return compare(op, args, func(x, y float64) bool { return x < y })
	case "le", "less_equal":
		return compare(op, args, func(x, y float64) bool { return x <= y })
	case "eq", "equal":
		return compare(op, args, func(x, y float64) bool { return x == y })
	case "ne", "not_equal":
		return compare(op, args, func(x, y float64) bool { return x != y })
	case "gt", "greater":
		return compare(op, args, func(x, y float64) bool { return x > y })
	case "ge", "greater_equal":
		return compare(op, args, func(x, y float64) bool { return x >= y })
	case "isfinite":
		return predicate(op, args, func(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) })
	case "isnan":
		return predicate(op, args, math.IsNaN)
	case "stack":
		return stack(op, args)
	case "concatenate":
		return concatenate(op, args)
	case "broadcast_to":
		return broadcastTo(op, args)
	case "transpose":
		return transpose(op, args)
	case "trace":
		return trace(op, args)
	case "shape":
		return shapeOf(op, args)
	case "ndim":
		return ndimOf(op, args)
	case "size":
		return sizeOf(op, args)
	default:
		return nil, fmt.Errorf("number: unknown operation %q", op)
	}
}

package number

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// scalar widens the accepted scalar payload kinds to float64.
func scalar(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int64:
		return float64(s), true
	default:
		return 0, false
	}
}

func operandErr(op string, args ...any) error {
	kinds := make([]string, len(args))
	for i, a := range args {
		kinds[i] = fmt.Sprintf("%T", a)
	}

	return fmt.Errorf("number: %s: unsupported operands %v", op, kinds)
}

func need(op string, args []any, n int) error {
	if len(args) < n {
		return fmt.Errorf("number: %s expects %d operands, got %d", op, n, len(args))
	}

	return nil
}

// binary applies f elementwise over the scalar/vector/matrix operand
// combinations, broadcasting scalars.
func binary(op string, args []any, f func(x, y float64) float64) (any, error) {
	if err := need(op, args, 2); err != nil {
		return nil, err
	}

	a, b := args[0], args[1]

	if sa, ok := scalar(a); ok {
		if sb, ok := scalar(b); ok {
			return f(sa, sb), nil
		}

		if vb, ok := b.([]float64); ok {
			return mapVec(vb, func(y float64) float64 { return f(sa, y) }), nil
		}

		if db, ok := b.(*mat.Dense); ok {
			return mapDense(db, func(y float64) float64 { return f(sa, y) }), nil
		}
	}

	if va, ok := a.([]float64); ok {
		if sb, ok := scalar(b); ok {
			return mapVec(va, func(x float64) float64 { return f(x, sb) }), nil
		}

		if vb, ok := b.([]float64); ok {
			if len(va) != len(vb) {
				return nil, fmt.Errorf("number: %s: length mismatch %d != %d", op, len(va), len(vb))
			}

			out := make([]float64, len(va))
			for i := range va {
				out[i] = f(va[i], vb[i])
			}

			return out, nil
		}
	}

	if da, ok := a.(*mat.Dense); ok {
		if sb, ok := scalar(b); ok {
			return mapDense(da, func(x float64) float64 { return f(x, sb) }), nil
		}

		if db, ok := b.(*mat.Dense); ok {
			ar, ac := da.Dims()

			br, bc := db.Dims()
			if ar != br || ac != bc {
				return nil, fmt.Errorf("number: %s: shape mismatch %dx%d != %dx%d", op, ar, ac, br, bc)
			}

			out := mat.NewDense(ar, ac, nil)
			for i := 0; i < ar; i++ {
				for j := 0; j < ac; j++ {
					out.Set(i, j, f(da.At(i, j), db.At(i, j)))
				}
			}

			return out, nil
		}
	}

	return nil, operandErr(op, a, b)
}

func unary(op string, args []any, f func(x float64) float64) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case []float64:
		return mapVec(v, f), nil
	case *mat.Dense:
		return mapDense(v, f), nil
	default:
		if s, ok := scalar(args[0]); ok {
			return f(s), nil
		}

		return nil, operandErr(op, args[0])
	}
}

// reduce collapses a vector or matrix with f; a scalar reduces to itself.
func reduce(op string, args []any, f func(v []float64) float64) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case []float64:
		return f(v), nil
	case *mat.Dense:
		return f(v.RawMatrix().Data), nil
	default:
		if s, ok := scalar(args[0]); ok {
			return s, nil
		}

		return nil, operandErr(op, args[0])
	}
}

// compare applies pred elementwise, yielding bool or []bool.
func compare(op string, args []any, pred func(x, y float64) bool) (any, error) {
	if err := need(op, args, 2); err != nil {
		return nil, err
	}

	a, b := args[0], args[1]

	if sa, ok := scalar(a); ok {
		if sb, ok := scalar(b); ok {
			return pred(sa, sb), nil
		}

		if vb, ok := b.([]float64); ok {
			out := make([]bool, len(vb))
			for i, y := range vb {
				out[i] = pred(sa, y)
			}

			return out, nil
		}
	}

	if va, ok := a.([]float64); ok {
		if sb, ok := scalar(b); ok {
			out := make([]bool, len(va))
			for i, x := range va {
				out[i] = pred(x, sb)
			}

			return out, nil
		}

		if vb, ok := b.([]float64); ok {
			if len(va) != len(vb) {
				return nil, fmt.Errorf("number: %s: length mismatch %d != %d", op, len(va), len(vb))
			}

			out := make([]bool, len(va))
			for i := range va {
				out[i] = pred(va[i], vb[i])
			}

			return out, nil
		}
	}

	return nil, operandErr(op, a, b)
}

// predicate applies a unary float predicate, yielding bool or []bool.
func predicate(op string, args []any, pred func(x float64) bool) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case []float64:
		out := make([]bool, len(v))
		for i, x := range v {
			out[i] = pred(x)
		}

		return out, nil
	default:
		if s, ok := scalar(args[0]); ok {
			return pred(s), nil
		}

		return nil, operandErr(op, args[0])
	}
}

func matmul(op string, args []any) (any, error) {
	if err := need(op, args, 2); err != nil {
		return nil, err
	}

	if va, ok := args[0].([]float64); ok {
		vb, ok := args[1].([]float64)
		if !ok || len(va) != len(vb) {
			return nil, operandErr(op, args...)
		}

		return floats.Dot(va, vb), nil
	}

	da, aok := args[0].(*mat.Dense)

	db, bok := args[1].(*mat.Dense)
	if !aok || !bok {
		return nil, operandErr(op, args...)
	}

	var out mat.Dense
	out.Mul(da, db)

	return &out, nil
}

func take(op string, args []any) (any, error) {
	if err := need(op, args, 2); err != nil {
		return nil, err
	}

	v, ok := args[0].([]float64)
	if !ok {
		return nil, operandErr(op, args[0])
	}

	switch idx := args[1].(type) {
	case int:
		if idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("number: %s: index %d out of range [0,%d)", op, idx, len(v))
		}

		return v[idx], nil
	case []int:
		out := make([]float64, len(idx))
		for i, j := range idx {
			if j < 0 || j >= len(v) {
				return nil, fmt.Errorf("number: %s: index %d out of range [0,%d)", op, j, len(v))
			}

			out[i] = v[j]
		}

		return out, nil
	default:
		return nil, operandErr(op, args[1])
	}
}

func setItem(op string, args []any) (any, error) {
	if err := need(op, args, 3); err != nil {
		return nil, err
	}

	v, ok := args[0].([]float64)
	if !ok {
		return nil, operandErr(op, args[0])
	}

	idx, ok := args[1].(int)
	if !ok {
		return nil, operandErr(op, args[1])
	}

	if idx < 0 || idx >= len(v) {
		return nil, fmt.Errorf("number: %s: index %d out of range [0,%d)", op, idx, len(v))
	}

	s, ok := scalar(args[2])
	if !ok {
		return nil, operandErr(op, args[2])
	}

	v[idx] = s

	return v, nil
}

// stack joins the elements of the sole list operand along a new leading
// axis: scalars become a vector, equal-length vectors become matrix rows.
func stack(op string, args []any) (any, error) {
	elems, err := elemList(op, args)
	if err != nil {
		return nil, err
	}

	if _, ok := scalar(elems[0]); ok {
		out := make([]float64, len(elems))

		for i, e := range elems {
			s, ok := scalar(e)
			if !ok {
				return nil, operandErr(op, e)
			}

			out[i] = s
		}

		return out, nil
	}

	rows := make([][]float64, len(elems))

	for i, e := range elems {
		v, ok := e.([]float64)
		if !ok {
			return nil, operandErr(op, e)
		}

		if i > 0 && len(v) != len(rows[0]) {
			return nil, fmt.Errorf("number: %s: length mismatch %d != %d", op, len(v), len(rows[0]))
		}

		rows[i] = v
	}

	out := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		out.SetRow(i, row)
	}

	return out, nil
}

// concatenate joins the elements of the sole list operand end to end.
func concatenate(op string, args []any) (any, error) {
	elems, err := elemList(op, args)
	if err != nil {
		return nil, err
	}

	var out []float64

	for _, e := range elems {
		switch v := e.(type) {
		case []float64:
			out = append(out, v...)
		default:
			s, ok := scalar(e)
			if !ok {
				return nil, operandErr(op, e)
			}

			out = append(out, s)
		}
	}

	return out, nil
}

func elemList(op string, args []any) ([]any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	elems, ok := args[0].([]any)
	if !ok || len(elems) == 0 {
		return nil, fmt.Errorf("number: %s expects a non-empty element list, got %T", op, args[0])
	}

	return elems, nil
}

func broadcastTo(op string, args []any) (any, error) {
	if err := need(op, args, 2); err != nil {
		return nil, err
	}

	n, ok := args[1].(int)
	if !ok || n < 0 {
		return nil, operandErr(op, args[1])
	}

	switch v := args[0].(type) {
	case []float64:
		if len(v) != n {
			return nil, fmt.Errorf("number: %s: cannot broadcast length %d to %d", op, len(v), n)
		}

		return v, nil
	default:
		s, ok := scalar(args[0])
		if !ok {
			return nil, operandErr(op, args[0])
		}

		out := make([]float64, n)
		for i := range out {
			out[i] = s
		}

		return out, nil
	}
}

func transpose(op string, args []any) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case *mat.Dense:
		var out mat.Dense
		out.CloneFrom(v.T())

		return &out, nil
	case []float64:
		return v, nil
	default:
		if s, ok := scalar(args[0]); ok {
			return s, nil
		}

		return nil, operandErr(op, args[0])
	}
}

func trace(op string, args []any) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	d, ok := args[0].(*mat.Dense)
	if !ok {
		return nil, operandErr(op, args[0])
	}

	return mat.Trace(d), nil
}

func shapeOf(op string, args []any) (any, error) {
	if err := need(op, args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case []float64:
		return []int{len(v)}, nil
	case *mat.Dense:
		r, c := v.Dims()
		return []int{r, c}, nil
	default:
		if _, ok := scalar(args[0]); ok {
			return []int{}, nil
		}

		return nil, operandErr(op, args[0])
	}
}

func ndimOf(op string, args []any) (any, error) {
	shape, err := shapeOf(op, args)
	if err != nil {
		return nil, err
	}

	return len(shape.([]int)), nil
}

func sizeOf(op string, args []any) (any, error) {
	shape, err := shapeOf(op, args)
	if err != nil {
		return nil, err
	}

	size := 1
	for _, n := range shape.([]int) {
		size *= n
	}

	return size, nil
}

func mapVec(v []float64, f func(x float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}

	return out
}

func mapDense(d *mat.Dense, f func(x float64) float64) *mat.Dense {
	r, c := d.Dims()

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, f(d.At(i, j)))
		}
	}

	return out
}

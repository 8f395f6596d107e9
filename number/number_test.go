package number_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"unitful/number"
)

var eng number.Engine

func call(t *testing.T, op string, args ...any) any {
	t.Helper()

	out, err := eng.Call(op, args, nil)
	require.NoError(t, err)

	return out
}

func TestElementwise(t *testing.T) {
	t.Parallel()

	t.Run("scalar scalar", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5.0, call(t, "add", 2.0, 3.0))
		assert.Equal(t, -1.0, call(t, "sub", 2.0, 3.0))
		assert.Equal(t, 6.0, call(t, "mul", 2.0, 3.0))
		assert.Equal(t, 1.5, call(t, "divide", 3.0, 2.0))
		assert.Equal(t, 8.0, call(t, "pow", 2.0, 3.0))
		assert.Equal(t, 5.0, call(t, "hypot", 3.0, 4.0))
	})

	t.Run("vector vector", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []float64{4, 6}, call(t, "add", []float64{1, 2}, []float64{3, 4}))
		assert.Equal(t, []float64{3, 8}, call(t, "multiply", []float64{1, 2}, []float64{3, 4}))
	})

	t.Run("scalar broadcast", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []float64{2, 4}, call(t, "multiply", []float64{1, 2}, 2.0))
		assert.Equal(t, []float64{9, 8}, call(t, "sub", 10.0, []float64{1, 2}))
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := eng.Call("add", []any{[]float64{1}, []float64{1, 2}}, nil)
		assert.Error(t, err)
	})
}

func TestUnaryAndReductions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -2.0, call(t, "neg", 2.0))
	assert.Equal(t, 2.0, call(t, "abs", -2.0))
	assert.Equal(t, []float64{1, 2}, call(t, "absolute", []float64{-1, 2}))
	assert.Equal(t, 3.0, call(t, "sqrt", 9.0))

	v := []float64{3, 1, 2}
	assert.Equal(t, 6.0, call(t, "sum", v))
	assert.Equal(t, 2.0, call(t, "mean", v))
	assert.Equal(t, 3.0, call(t, "amax", v))
	assert.Equal(t, 1.0, call(t, "amin", v))
	assert.Equal(t, 2.0, call(t, "ptp", v))

	// A scalar reduces to itself.
	assert.Equal(t, 7.0, call(t, "sum", 7.0))
}

func TestComparisonsAndPredicates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, call(t, "lt", 1.0, 2.0))
	assert.Equal(t, []bool{true, false}, call(t, "less", []float64{1, 3}, 2.0))
	assert.Equal(t, []bool{false, true}, call(t, "equal", []float64{1, 2}, []float64{0, 2}))
	assert.Equal(t, true, call(t, "isfinite", 1.0))
	assert.Equal(t, false, call(t, "isnan", 1.0))
}

func TestIndexing(t *testing.T) {
	t.Parallel()

	v := []float64{1, 2, 3}

	assert.Equal(t, 2.0, call(t, "getitem", v, 1))
	assert.Equal(t, []float64{3, 1}, call(t, "take", v, []int{2, 0}))

	_, err := eng.Call("getitem", []any{v, 9}, nil)
	assert.Error(t, err)

	out := call(t, "setitem", []float64{1, 2, 3}, 0, 9.0)
	assert.Equal(t, []float64{9, 2, 3}, out)
}

func TestStackingAndShape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{1, 2, 3}, call(t, "stack", []any{1.0, 2.0, 3.0}))
	assert.Equal(t, []float64{1, 2, 3, 4}, call(t, "concatenate", []any{[]float64{1, 2}, []float64{3, 4}}))

	stacked := call(t, "stack", []any{[]float64{1, 2}, []float64{3, 4}})
	spew.Dump(stacked)

	d, ok := stacked.(*mat.Dense)
	require.True(t, ok)

	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, d.At(1, 0))

	assert.Equal(t, []int{3}, call(t, "shape", []float64{1, 2, 3}))
	assert.Equal(t, []int{}, call(t, "shape", 1.0))
	assert.Equal(t, 1, call(t, "ndim", []float64{1, 2}))
	assert.Equal(t, 4, call(t, "size", d))
	assert.Equal(t, []float64{5, 5, 5}, call(t, "broadcast_to", 5.0, 3))
}

func TestMatrixOps(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})

	sum, ok := call(t, "add", a, b).(*mat.Dense)
	require.True(t, ok)
	assert.Equal(t, 6.0, sum.At(0, 0))

	prod, ok := call(t, "matmul", a, b).(*mat.Dense)
	require.True(t, ok)
	assert.Equal(t, 19.0, prod.At(0, 0))
}

func TestVectorDot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 11.0, call(t, "matmul", []float64{1, 2}, []float64{3, 4}))
}

func TestTransposeAndTrace(t *testing.T) {
	t.Parallel()

	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	tr, ok := call(t, "transpose", a).(*mat.Dense)
	require.True(t, ok)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, tr.At(0, 1))

	sq := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.Equal(t, 5.0, call(t, "trace", sq))
}

func TestUnknownOperation(t *testing.T) {
	t.Parallel()

	_, err := eng.Call("fft", []any{1.0}, nil)
	assert.Error(t, err)
}

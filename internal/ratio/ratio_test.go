package ratio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
		wantN    int64
		wantD    int64
	}{
		{"lowest terms", 2, 4, 1, 2},
		{"negative denominator", 1, -2, -1, 2},
		{"double negative", -3, -6, 1, 2},
		{"zero", 0, 5, 0, 1},
		{"integer", 6, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.num, tt.den)
			assert.Equal(t, tt.wantN, r.Num())
			assert.Equal(t, tt.wantD, r.Den())
		})
	}
}

func TestNew_ZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { New(1, 0) })
}

func TestEqualRationalsCompareEqual(t *testing.T) {
	assert.Equal(t, New(1, 2), New(2, 4))
	assert.Equal(t, FromInt(0), New(0, 7))
	assert.True(t, New(3, 6) == New(1, 2))
}

func TestArithmetic(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)

	assert.Equal(t, New(5, 6), half.Add(third))
	assert.Equal(t, New(1, 6), half.Sub(third))
	assert.Equal(t, New(1, 6), half.Mul(third))
	assert.Equal(t, New(-1, 2), half.Neg())
	assert.Equal(t, FromInt(0), half.Sub(half))
	assert.True(t, half.Sub(half).IsZero())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, New(1, 3).Cmp(New(1, 2)))
	assert.Equal(t, 1, New(-1, 3).Cmp(New(-1, 2)))
	assert.Equal(t, 0, New(2, 4).Cmp(New(1, 2)))
}

func TestFromFloat(t *testing.T) {
	t.Run("exact halves", func(t *testing.T) {
		r, err := FromFloat(0.5)
		require.NoError(t, err)
		assert.Equal(t, New(1, 2), r)
	})

	t.Run("integers", func(t *testing.T) {
		r, err := FromFloat(-3)
		require.NoError(t, err)
		assert.Equal(t, FromInt(-3), r)
	})

	t.Run("dyadic", func(t *testing.T) {
		r, err := FromFloat(0.75)
		require.NoError(t, err)
		assert.Equal(t, New(3, 4), r)
	})

	t.Run("non-finite rejected", func(t *testing.T) {
		_, err := FromFloat(math.Inf(1))
		assert.Error(t, err)

		_, err = FromFloat(math.NaN())
		assert.Error(t, err)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "2", FromInt(2).String())
	assert.Equal(t, "-1/2", New(1, -2).String())
	assert.Equal(t, "0", Rat{}.String())
}

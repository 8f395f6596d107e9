package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitful/diag"
	"unitful/dim"
)

// testUnits builds a small isolated registry: length and time base units
// only.
func testUnits(t *testing.T) (*Units, *dim.Registry) {
	t.Helper()

	dims := dim.NewRegistry()

	length, err := dims.DeclareBase("L")
	require.NoError(t, err)
	timeDim, err := dims.DeclareBase("T")
	require.NoError(t, err)

	u := NewUnits(dims)

	meter, err := New(length, 1.0)
	require.NoError(t, err)
	require.NoError(t, u.Define("m", meter))

	second, err := New(timeDim, 1.0)
	require.NoError(t, err)
	require.NoError(t, u.Define("s", second))

	return u, dims
}

func TestDefine_ExpandsPrefixes(t *testing.T) {
	u, _ := testUnits(t)

	for _, symbol := range []string{"km", "mm", "μm", "ys", "Ym"} {
		assert.True(t, u.Has(symbol), symbol)
	}

	km, err := u.Resolve("km")
	require.NoError(t, err)
	assert.Equal(t, 1e3, km.Payload())

	ym, err := u.Resolve("ym")
	require.NoError(t, err)
	assert.InDelta(t, 1e-24, ym.Payload().(float64), 1e-33)
}

func TestDefine_RejectsRedefinition(t *testing.T) {
	u, dims := testUnits(t)

	length, err := dims.ParseName("L")
	require.NoError(t, err)

	ref, err := New(length, 2.0)
	require.NoError(t, err)

	err = u.Define("m", ref)
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.KindConfiguration))

	// A prefixed variant counts as an existing symbol too.
	err = u.Define("km", ref)
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.KindConfiguration))

	// The original definition is untouched.
	m, err := u.Resolve("m")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Payload())
}

func TestDefine_PrefixCollisionIsAtomic(t *testing.T) {
	u, dims := testUnits(t)

	require.NoError(t, u.Define("min", "60s"))

	// "m"+"in" collides with the already defined "min".
	length, err := dims.ParseName("L")
	require.NoError(t, err)

	inch, err := New(length, 0.0254)
	require.NoError(t, err)

	err = u.Define("in", inch)
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.KindConfiguration))
	assert.Contains(t, err.Error(), "min")

	// Nothing was inserted, not even non-colliding variants.
	assert.False(t, u.Has("in"))
	assert.False(t, u.Has("Yin"))
	assert.False(t, u.Has("kin"))

	// Previously defined symbols still resolve correctly.
	minute, err := u.Resolve("min")
	require.NoError(t, err)
	assert.InDelta(t, 60.0, minute.Payload().(float64), 1e-12)
}

func TestDefine_StringExpression(t *testing.T) {
	u, _ := testUnits(t)

	require.NoError(t, u.Define("Hz", "/s"))

	hz, err := u.Resolve("Hz")
	require.NoError(t, err)
	assert.Equal(t, "/T", hz.Dim().Name())
	assert.Equal(t, 1.0, hz.Payload())
}

func TestDefine_Rejections(t *testing.T) {
	u, _ := testUnits(t)

	t.Run("dimensionless expression", func(t *testing.T) {
		err := u.Define("one", "42")
		require.Error(t, err)
		assert.True(t, diag.IsKind(err, diag.KindConfiguration))
	})

	t.Run("unsupported value type", func(t *testing.T) {
		err := u.Define("x", 42)
		require.Error(t, err)
		assert.True(t, diag.IsKind(err, diag.KindConfiguration))
	})

	t.Run("unparseable expression", func(t *testing.T) {
		err := u.Define("x", "3bogus")
		require.Error(t, err)
		assert.True(t, diag.IsKind(err, diag.KindConfiguration))
		assert.True(t, diag.IsKind(err, diag.KindParse))
	})
}

func TestResolve_Undefined(t *testing.T) {
	u, _ := testUnits(t)

	_, err := u.Resolve("parsec")
	require.Error(t, err)
	assert.True(t, diag.IsKind(err, diag.KindLookup))
	assert.Contains(t, err.Error(), "parsec")
}

func TestSITable(t *testing.T) {
	// Spot checks over the embedded table.
	for _, symbol := range []string{"m", "s", "kg", "N", "Pa", "J", "W", "Hz", "Ω", "lx", "kat", "eV", "Da", "L", "ha", "au"} {
		assert.True(t, SI.Has(symbol), symbol)
	}

	pa, err := SI.Resolve("Pa")
	require.NoError(t, err)
	assert.Same(t, dim.Pressure, pa.Dim())

	ohm, err := SI.Resolve("Ω")
	require.NoError(t, err)
	assert.Same(t, dim.Resistance, ohm.Dim())

	liter, err := SI.Resolve("L")
	require.NoError(t, err)
	assert.Same(t, dim.Volume, liter.Dim())
	assert.InDelta(t, 1e-3, liter.Payload().(float64), 1e-12)

	gram, err := SI.Resolve("g")
	require.NoError(t, err)
	assert.Equal(t, 1e-3, gram.Payload())
}

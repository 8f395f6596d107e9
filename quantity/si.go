package quantity

import (
	_ "embed"

	"unitful/dim"
)

// The standard unit table ships with the package; see units.yaml for the
// full set of base, derived, and accepted non-SI symbols.
//
//go:embed units.yaml
var siTable []byte

// SI is the default unit registry, loaded from the embedded table against
// dim.SI.
var SI = mustLoadSI()

func mustLoadSI() *Units {
	t, err := ParseTable(siTable)
	if err != nil {
		panic(err)
	}

	u := NewUnits(dim.SI)
	if err := u.LoadTable(t); err != nil {
		panic(err)
	}

	return u
}

package quantity

import (
	"sort"
	"strings"
	"sync"

	"unitful/diag"
	"unitful/dim"
)

// metric prefixes, yotta down to yocto. Deka (da) is not generated.
var prefixes = []struct {
	symbol string
	scale  float64
}{
	{"Y", 1e24}, {"Z", 1e21}, {"E", 1e18}, {"P", 1e15}, {"T", 1e12},
	{"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2},
	{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"μ", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
}

// Units maps unit symbols to dimensioned reference values. Defining a
// symbol also defines its metric-prefixed variants; any collision aborts
// the whole definition. Symbols are case- and prefix-sensitive.
//
// Units is safe for concurrent use.
type Units struct {
	dims *dim.Registry

	mu    sync.RWMutex
	units map[string]Value
}

// NewUnits creates an empty unit registry resolving dimensions against
// dims.
func NewUnits(dims *dim.Registry) *Units {
	return &Units{dims: dims, units: make(map[string]Value)}
}

// Dims returns the dimension registry the units resolve against.
func (u *Units) Dims() *dim.Registry { return u.dims }

// Define registers symbol with the given reference value and its 19
// metric-prefixed variants. The value may be a Value or an expression
// string resolved via Parse (so units can be defined in terms of earlier
// ones). Redefinition and any prefix collision fail atomically, leaving
// the registry unmodified.
func (u *Units) Define(symbol string, value any) error {
	var (
		ref Value
		err error
	)

	switch v := value.(type) {
	case Value:
		ref = v
	case string:
		ref, err = u.parseUnitExpr(symbol, v)
		if err != nil {
			return err
		}
	default:
		return diag.Newf(diag.KindConfiguration, "define unit", symbol,
			"value must be a quantity or an expression string, got %T", value)
	}

	scaled := make(map[string]Value, len(prefixes))

	for _, p := range prefixes {
		sv, err := ref.scale(p.scale)
		if err != nil {
			return diag.Wrap(diag.KindConfiguration, "define unit", symbol, err)
		}

		scaled[p.symbol+symbol] = sv
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.units[symbol]; exists {
		return diag.Newf(diag.KindConfiguration, "define unit", symbol, "unit is already defined")
	}

	var collisions []string

	for name := range scaled {
		if _, exists := u.units[name]; exists {
			collisions = append(collisions, name)
		}
	}

	if len(collisions) > 0 {
		sort.Strings(collisions)
		return diag.Newf(diag.KindConfiguration, "define unit", symbol,
			"unit collides with %s", strings.Join(collisions, ", "))
	}

	u.units[symbol] = ref
	for name, sv := range scaled {
		u.units[name] = sv
	}

	return nil
}

// parseUnitExpr resolves a definition expression, requiring a dimensioned
// result.
func (u *Units) parseUnitExpr(symbol, expr string) (Value, error) {
	parsed, err := u.Parse(expr)
	if err != nil {
		return Value{}, diag.Wrap(diag.KindConfiguration, "define unit", symbol, err)
	}

	ref, ok := parsed.(Value)
	if !ok {
		return Value{}, diag.Newf(diag.KindConfiguration, "define unit", symbol,
			"expression %q is dimensionless", expr)
	}

	return ref, nil
}

// Resolve returns the reference value for symbol.
func (u *Units) Resolve(symbol string) (Value, error) {
	u.mu.RLock()
	ref, ok := u.units[symbol]
	u.mu.RUnlock()

	if !ok {
		return Value{}, diag.Newf(diag.KindLookup, "resolve unit", symbol, "unit is not defined")
	}

	return ref, nil
}

// Has reports whether symbol is defined.
func (u *Units) Has(symbol string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	_, ok := u.units[symbol]

	return ok
}

// Names returns all defined symbols, sorted, prefixed variants included.
func (u *Units) Names() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	names := make([]string, 0, len(u.units))
	for name := range u.units {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// scale returns the value multiplied by a bare scalar. Unit reference
// values carry scalar payloads.
func (v Value) scale(s float64) (Value, error) {
	f, ok := asFloat(v.payload)
	if !ok {
		return Value{}, diag.Newf(diag.KindConfiguration, "scale unit", "",
			"unit reference value must be scalar, got %T", v.payload)
	}

	return Value{dim: v.dim, payload: f * s}, nil
}

func asFloat(payload any) (float64, bool) {
	switch f := payload.(type) {
	case float64:
		return f, true
	case int:
		return float64(f), true
	case int64:
		return float64(f), true
	default:
		return 0, false
	}
}

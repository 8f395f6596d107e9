package dim

import (
	"sync"

	"unitful/diag"
	"unitful/internal/factor"
	"unitful/internal/ratio"
)

// Registry canonicalizes power maps into unique cached Dimension identities.
// It is safe for concurrent use: identities are created with an
// insert-if-absent discipline, so a racing first use of the same power map
// still yields a single identity.
//
// Identities are interned for the registry's lifetime. There is no eviction;
// the set of dimension combinations reachable in one process is small.
type Registry struct {
	mu     sync.Mutex
	byName map[string]*Dimension
}

// NewRegistry creates an empty registry with only the dimensionless
// identity interned.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Dimension)}
	r.FromPowers(nil)

	return r
}

// DeclareBase creates a new root dimension with exponent 1 on symbol. It
// fails if symbol is not a bare identifier in the factor syntax, or if a
// dimension with that canonical form has already been interned.
func (r *Registry) DeclareBase(symbol string) (*Dimension, error) {
	factors, err := factor.Split(symbol)
	if err != nil || len(factors) != 1 || factors[0].Text != symbol || !factors[0].Numer {
		return nil, diag.Newf(diag.KindConfiguration, "declare", symbol, "invalid dimension symbol")
	}

	// The canonical name of {symbol: 1} is the symbol itself, so the
	// duplicate check and the insert share one critical section.
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[symbol]; taken {
		return nil, diag.Newf(diag.KindConfiguration, "declare", symbol, "dimension is already in use")
	}

	d := &Dimension{reg: r, name: symbol, powers: map[string]ratio.Rat{symbol: ratio.FromInt(1)}}
	r.byName[symbol] = d

	return d, nil
}

// FromPowers returns the unique cached identity for the given power map,
// dropping zero exponents. Repeated calls with equal maps return the
// identical pointer.
func (r *Registry) FromPowers(powers map[string]ratio.Rat) *Dimension {
	nonzero := make(map[string]ratio.Rat, len(powers))
	for base, power := range powers {
		if !power.IsZero() {
			nonzero[base] = power
		}
	}

	name := canonicalName(nonzero)

	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.byName[name]; ok {
		return d
	}

	d := &Dimension{reg: r, name: name, powers: nonzero}
	r.byName[name] = d

	return d
}

// Dimensionless returns the identity for the empty power map.
func (r *Registry) Dimensionless() *Dimension {
	return r.FromPowers(nil)
}

// ParseName reconstructs the identity encoded by a canonical name, the
// inverse of Dimension.Name. Any name produced by this registry parses back
// to the identical pointer.
func (r *Registry) ParseName(name string) (*Dimension, error) {
	factors, err := factor.Split(name)
	if err != nil {
		return nil, diag.Wrap(diag.KindParse, "parse dimension name", name, err)
	}

	powers := make(map[string]ratio.Rat, len(factors))

	for _, f := range factors {
		if f.Text == "" {
			return nil, diag.Newf(diag.KindParse, "parse dimension name", name, "empty base symbol")
		}

		power := f.Power
		if !f.Numer {
			power = power.Neg()
		}

		powers[f.Text] = power
	}

	return r.FromPowers(powers), nil
}

// Len returns the number of interned identities, the dimensionless one
// included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byName)
}

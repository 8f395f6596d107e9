// Package dim implements the dimension algebra: interned identities for
// physical dimensions as maps from base symbol to rational exponent.
//
// Key types:
//   - Registry: canonicalizes power maps into unique cached identities
//   - Dimension: an immutable identity supporting Mul/Div/Pow composition
//
// Identities are interned per registry, so two equal power maps always
// yield the same *Dimension and pointer comparison is dimension equality.
// The package-level SI registry carries the standard base and derived
// dimensions.
package dim

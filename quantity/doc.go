// Package quantity provides dimensioned values: parsing quantity
// expressions like "9.81m/s2", a unit registry with SI metric prefix
// expansion, and the format mini-language for display.
//
// Key capabilities:
//   - Value: an immutable (dimension, payload) pair
//   - Units: symbol registry with atomic, collision-checked definition
//   - Parse: expression text to Value (or bare number when dimensionless)
//   - Format: numeric-prefix + unit-suffix display specs
//
// The SI registry ships as an embedded YAML definition table and is loaded
// at package init.
package quantity

package quantity

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table is the root of a YAML unit-definition file. Base entries bind a
// symbol to a dimension's reference quantity; derived entries are
// expressions over previously defined symbols, so order matters.
type Table struct {
	Base    []BaseUnit    `yaml:"base"`
	Derived []DerivedUnit `yaml:"derived"`
}

// BaseUnit defines a unit directly against a dimension.
type BaseUnit struct {
	// Symbol is the unit symbol, e.g. "m".
	Symbol string `yaml:"symbol"`

	// Dimension is the canonical dimension name, e.g. "L".
	Dimension string `yaml:"dimension"`

	// Scale is the magnitude of the reference value (default 1). The gram
	// is defined with scale 1e-3 so that the kilogram is the coherent unit.
	Scale float64 `yaml:"scale,omitempty"`
}

// DerivedUnit defines a unit by an expression over earlier units.
type DerivedUnit struct {
	// Symbol is the unit symbol, e.g. "Pa".
	Symbol string `yaml:"symbol"`

	// Expr is the quantity expression, e.g. "N/m2".
	Expr string `yaml:"expr"`

	// Name is the optional spelled-out unit name, e.g. "pascal".
	Name string `yaml:"name,omitempty"`
}

// ParseTable parses YAML data into a Table.
func ParseTable(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse unit table: %w", err)
	}

	return &t, nil
}

// LoadTable defines every entry of the table, base units first. Loading
// stops at the first failing definition.
func (u *Units) LoadTable(t *Table) error {
	for _, b := range t.Base {
		d, err := u.dims.ParseName(b.Dimension)
		if err != nil {
			return fmt.Errorf("base unit %s: %w", b.Symbol, err)
		}

		scale := b.Scale
		if scale == 0 {
			scale = 1
		}

		ref, err := New(d, scale)
		if err != nil {
			return fmt.Errorf("base unit %s: %w", b.Symbol, err)
		}

		if err := u.Define(b.Symbol, ref); err != nil {
			return err
		}
	}

	for _, d := range t.Derived {
		if err := u.Define(d.Symbol, d.Expr); err != nil {
			return err
		}
	}

	return nil
}

/*
Copyright © 2018 the Measure authors.
This file is part of Measure.

Measure is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Measure is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Measure.  If not, see <http://www.gnu.org/licenses/>.
*/

package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is the version of this library.
const Version = "1.0.0"

// Kind is a dimensional category of quantity. Arithmetic operations
// require their operands to have matching kinds.
type Kind int

const (
	// KindDistance is linear distance, stored in meters.
	KindDistance Kind = iota
	// KindArea is area, stored in square meters.
	KindArea
)

func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindArea:
		return "area"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Quantity is a magnitude of some kind, stored in the kind's base
// unit, together with the unit it should display in. Distance and
// Area are the two implementations.
type Quantity interface {
	// Kind returns the quantity's dimensional category.
	Kind() Kind
	// BaseValue returns the magnitude in the kind's base unit.
	BaseValue() float64
	// DefaultUnit returns the canonical key of the display unit.
	DefaultUnit() string
	// String renders the quantity in its display unit.
	String() string
}

// registryFor returns the unit registry for kind k.
func registryFor(k Kind) *Registry {
	if k == KindArea {
		return AreaUnits
	}
	return DistanceUnits
}

// remake builds a quantity of the given kind directly from a base-unit
// magnitude and an already-resolved display unit.
func remake(kind Kind, base float64, unit string) Quantity {
	if kind == KindArea {
		return Area{sqm: base, unit: unit}
	}
	return Distance{m: base, unit: unit}
}

// New creates a quantity of the given kind from a value expressed in
// the named unit. The unit may be a canonical key, an abbreviation, or
// a full name, matched case-insensitively.
func New(kind Kind, value float64, unit string) (Quantity, error) {
	switch kind {
	case KindDistance:
		d, err := NewDistance(value, unit)
		if err != nil {
			return nil, err
		}
		return d, nil
	case KindArea:
		a, err := NewArea(value, unit)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, &InvalidConstructionError{Kind: kind, Reason: "unknown quantity kind"}
	}
}

// Convert returns the magnitude of q expressed in the named unit.
func Convert(q Quantity, unit string) (float64, error) {
	return registryFor(q.Kind()).Convert(q.BaseValue(), unit)
}

// UnitAttname translates a full unit name or alias into the canonical
// key used by the registry for the given kind, for example
// "Kilometre" into "km".
func UnitAttname(kind Kind, name string) (string, error) {
	return registryFor(kind).Resolve(name)
}

func sameKind(op string, a, b Quantity) error {
	if a.Kind() != b.Kind() {
		return &IncompatibleQuantityError{
			Op:    op,
			Left:  a.Kind().String(),
			Right: b.Kind().String(),
		}
	}
	return nil
}

// Add returns a + b. Both operands must have the same kind; the
// result displays in a's default unit.
func Add(a, b Quantity) (Quantity, error) {
	if err := sameKind("addition", a, b); err != nil {
		return nil, err
	}
	return remake(a.Kind(), a.BaseValue()+b.BaseValue(), a.DefaultUnit()), nil
}

// Sub returns a - b. Both operands must have the same kind; the
// result displays in a's default unit.
func Sub(a, b Quantity) (Quantity, error) {
	if err := sameKind("subtraction", a, b); err != nil {
		return nil, err
	}
	return remake(a.Kind(), a.BaseValue()-b.BaseValue(), a.DefaultUnit()), nil
}

// Neg returns q with its magnitude negated, keeping the display unit.
func Neg(q Quantity) Quantity {
	return remake(q.Kind(), -q.BaseValue(), q.DefaultUnit())
}

// Scale returns q multiplied by the dimensionless scalar s.
func Scale(q Quantity, s float64) Quantity {
	return remake(q.Kind(), q.BaseValue()*s, q.DefaultUnit())
}

// DivScalar returns q divided by the dimensionless scalar s.
func DivScalar(q Quantity, s float64) (Quantity, error) {
	if s == 0 {
		return nil, ErrDivisionByZero
	}
	return remake(q.Kind(), q.BaseValue()/s, q.DefaultUnit()), nil
}

// Mul returns the product of two distances as an Area. No other kind
// combination has a defined product.
func Mul(a, b Quantity) (Quantity, error) {
	da, aok := a.(Distance)
	db, bok := b.(Distance)
	if !aok || !bok {
		return nil, &IncompatibleQuantityError{
			Op:    "multiplication",
			Left:  a.Kind().String(),
			Right: b.Kind().String(),
		}
	}
	return da.Mul(db), nil
}

// Ratio returns the dimensionless quotient a / b of two same-kind
// quantities.
func Ratio(a, b Quantity) (float64, error) {
	if err := sameKind("division", a, b); err != nil {
		return 0, err
	}
	if b.BaseValue() == 0 {
		return 0, ErrDivisionByZero
	}
	return a.BaseValue() / b.BaseValue(), nil
}

// Compare returns -1, 0, or 1 depending on whether a is less than,
// equal to, or greater than b. Both operands must have the same kind.
func Compare(a, b Quantity) (int, error) {
	if err := sameKind("comparison", a, b); err != nil {
		return 0, err
	}
	switch {
	case a.BaseValue() < b.BaseValue():
		return -1, nil
	case a.BaseValue() > b.BaseValue():
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether a < b.
func Less(a, b Quantity) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

// LessEq reports whether a <= b.
func LessEq(a, b Quantity) (bool, error) {
	c, err := Compare(a, b)
	return c <= 0, err
}

// Equal reports whether a and b have equal magnitudes.
func Equal(a, b Quantity) (bool, error) {
	c, err := Compare(a, b)
	return c == 0, err
}

// GreaterEq reports whether a >= b.
func GreaterEq(a, b Quantity) (bool, error) {
	c, err := Compare(a, b)
	return c >= 0, err
}

// Greater reports whether a > b.
func Greater(a, b Quantity) (bool, error) {
	c, err := Compare(a, b)
	return c > 0, err
}

// formatValue renders v with the fewest decimal digits that still
// round-trip to the same float64. Integral values keep a trailing
// ".0" so a magnitude always reads as a decimal number.
func formatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

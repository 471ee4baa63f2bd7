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

import "math"

// An Area is a surface measurement stored in square meters. Like
// Distance, Areas are immutable values.
type Area struct {
	sqm  float64 // magnitude in square meters
	unit string  // canonical key of the display unit
}

// NewArea creates an Area from a value expressed in the named unit,
// which becomes the new value's display unit. The same construction
// rules apply as for NewDistance.
func NewArea(value float64, unit string) (Area, error) {
	if unit == "" {
		return Area{}, &InvalidConstructionError{Kind: KindArea, Reason: "missing unit"}
	}
	key, err := AreaUnits.Resolve(unit)
	if err != nil {
		return Area{}, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Area{}, &InvalidConstructionError{Kind: KindArea, Reason: "non-finite magnitude"}
	}
	f, _ := AreaUnits.Factor(key)
	return Area{sqm: value * f, unit: key}, nil
}

// Kind returns KindArea.
func (a Area) Kind() Kind { return KindArea }

// BaseValue returns the magnitude of a in square meters.
func (a Area) BaseValue() float64 { return a.sqm }

// SquareMeters returns the magnitude of a in square meters.
func (a Area) SquareMeters() float64 { return a.sqm }

// DefaultUnit returns the canonical key of a's display unit.
func (a Area) DefaultUnit() string { return a.unit }

// Convert returns the magnitude of a expressed in the named unit.
func (a Area) Convert(unit string) (float64, error) {
	return AreaUnits.Convert(a.sqm, unit)
}

// Add returns a + o, displayed in a's unit.
func (a Area) Add(o Area) Area {
	return Area{sqm: a.sqm + o.sqm, unit: a.unit}
}

// Sub returns a - o, displayed in a's unit.
func (a Area) Sub(o Area) Area {
	return Area{sqm: a.sqm - o.sqm, unit: a.unit}
}

// Neg returns a with its magnitude negated.
func (a Area) Neg() Area {
	return Area{sqm: -a.sqm, unit: a.unit}
}

// Scale returns a multiplied by the dimensionless scalar s.
func (a Area) Scale(s float64) Area {
	return Area{sqm: a.sqm * s, unit: a.unit}
}

// Div returns a divided by the dimensionless scalar s.
func (a Area) Div(s float64) (Area, error) {
	if s == 0 {
		return Area{}, ErrDivisionByZero
	}
	return Area{sqm: a.sqm / s, unit: a.unit}, nil
}

// Ratio returns the dimensionless quotient a / o.
func (a Area) Ratio(o Area) (float64, error) {
	if o.sqm == 0 {
		return 0, ErrDivisionByZero
	}
	return a.sqm / o.sqm, nil
}

// Cmp returns -1, 0, or 1 depending on whether a is less than, equal
// to, or greater than o.
func (a Area) Cmp(o Area) int {
	switch {
	case a.sqm < o.sqm:
		return -1
	case a.sqm > o.sqm:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and o have equal magnitudes.
func (a Area) Equal(o Area) bool { return a.sqm == o.sqm }

// String renders a in its display unit, for example "2.5 sq_km".
func (a Area) String() string {
	v, _ := a.Convert(a.unit)
	return formatValue(v) + " " + a.unit
}

// SquareMeters creates an Area from a number of square meters.
func SquareMeters(v float64) Area { return Area{sqm: v, unit: "sq_m"} }

// SquareKilometers creates an Area from a number of square kilometers.
func SquareKilometers(v float64) Area { return Area{sqm: v * 1e6, unit: "sq_km"} }

// SquareMiles creates an Area from a number of square miles.
func SquareMiles(v float64) Area { return Area{sqm: v * 1609.344 * 1609.344, unit: "sq_mi"} }

// SquareFeet creates an Area from a number of square feet.
func SquareFeet(v float64) Area { return Area{sqm: v * 0.3048 * 0.3048, unit: "sq_ft"} }

// SquareYards creates an Area from a number of square yards.
func SquareYards(v float64) Area { return Area{sqm: v * 0.9144 * 0.9144, unit: "sq_yd"} }

// Hectares creates an Area from a number of hectares.
func Hectares(v float64) Area { return Area{sqm: v * 10000, unit: "ha"} }

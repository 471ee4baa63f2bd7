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

// A Distance is a linear measurement stored in meters. The zero value
// is zero meters. Distances are immutable: arithmetic returns new
// values and never modifies an operand. Negative distances are legal;
// they represent signed offsets.
type Distance struct {
	m    float64 // magnitude in meters
	unit string  // canonical key of the display unit
}

// NewDistance creates a Distance from a value expressed in the named
// unit, which becomes the new value's display unit. The unit may be a
// canonical key, an abbreviation, or a full name, matched
// case-insensitively; exactly one unit must be supplied, and the value
// must be finite.
func NewDistance(value float64, unit string) (Distance, error) {
	if unit == "" {
		return Distance{}, &InvalidConstructionError{Kind: KindDistance, Reason: "missing unit"}
	}
	key, err := DistanceUnits.Resolve(unit)
	if err != nil {
		return Distance{}, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Distance{}, &InvalidConstructionError{Kind: KindDistance, Reason: "non-finite magnitude"}
	}
	f, _ := DistanceUnits.Factor(key)
	return Distance{m: value * f, unit: key}, nil
}

// Kind returns KindDistance.
func (d Distance) Kind() Kind { return KindDistance }

// BaseValue returns the magnitude of d in meters.
func (d Distance) BaseValue() float64 { return d.m }

// Meters returns the magnitude of d in meters.
func (d Distance) Meters() float64 { return d.m }

// DefaultUnit returns the canonical key of d's display unit.
func (d Distance) DefaultUnit() string { return d.unit }

// Convert returns the magnitude of d expressed in the named unit.
func (d Distance) Convert(unit string) (float64, error) {
	return DistanceUnits.Convert(d.m, unit)
}

// Add returns d + o, displayed in d's unit. Which operand's display
// unit wins is a fixed convention with no numeric consequence: the
// left one.
func (d Distance) Add(o Distance) Distance {
	return Distance{m: d.m + o.m, unit: d.unit}
}

// Sub returns d - o, displayed in d's unit.
func (d Distance) Sub(o Distance) Distance {
	return Distance{m: d.m - o.m, unit: d.unit}
}

// Neg returns d with its magnitude negated.
func (d Distance) Neg() Distance {
	return Distance{m: -d.m, unit: d.unit}
}

// Scale returns d multiplied by the dimensionless scalar s.
func (d Distance) Scale(s float64) Distance {
	return Distance{m: d.m * s, unit: d.unit}
}

// Div returns d divided by the dimensionless scalar s.
func (d Distance) Div(s float64) (Distance, error) {
	if s == 0 {
		return Distance{}, ErrDivisionByZero
	}
	return Distance{m: d.m / s, unit: d.unit}, nil
}

// Ratio returns the dimensionless quotient d / o.
func (d Distance) Ratio(o Distance) (float64, error) {
	if o.m == 0 {
		return 0, ErrDivisionByZero
	}
	return d.m / o.m, nil
}

// Mul returns the product d × o as an Area. The result displays in
// the square of d's display unit, or in square meters if no such unit
// is registered.
func (d Distance) Mul(o Distance) Area {
	unit := "sq_" + d.unit
	if _, err := AreaUnits.Factor(unit); err != nil {
		unit = AreaUnits.BaseUnit()
	}
	return Area{sqm: d.m * o.m, unit: unit}
}

// Cmp returns -1, 0, or 1 depending on whether d is less than, equal
// to, or greater than o.
func (d Distance) Cmp(o Distance) int {
	switch {
	case d.m < o.m:
		return -1
	case d.m > o.m:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and o have equal magnitudes.
func (d Distance) Equal(o Distance) bool { return d.m == o.m }

// String renders d in its display unit, for example "5.0 km".
func (d Distance) String() string {
	v, _ := d.Convert(d.unit)
	return formatValue(v) + " " + d.unit
}

// The functions below create distances directly in commonly used
// units, for callers that know their unit at compile time.

// Meters creates a Distance from a number of meters.
func Meters(v float64) Distance { return Distance{m: v, unit: "m"} }

// Kilometers creates a Distance from a number of kilometers.
func Kilometers(v float64) Distance { return Distance{m: v * 1000, unit: "km"} }

// Miles creates a Distance from a number of miles.
func Miles(v float64) Distance { return Distance{m: v * 1609.344, unit: "mi"} }

// Feet creates a Distance from a number of feet.
func Feet(v float64) Distance { return Distance{m: v * 0.3048, unit: "ft"} }

// Yards creates a Distance from a number of yards.
func Yards(v float64) Distance { return Distance{m: v * 0.9144, unit: "yd"} }

// Inches creates a Distance from a number of inches.
func Inches(v float64) Distance { return Distance{m: v * 0.0254, unit: "inch"} }

// Centimeters creates a Distance from a number of centimeters.
func Centimeters(v float64) Distance { return Distance{m: v * 0.01, unit: "cm"} }

// Millimeters creates a Distance from a number of millimeters.
func Millimeters(v float64) Distance { return Distance{m: v * 0.001, unit: "mm"} }

// NauticalMiles creates a Distance from a number of nautical miles.
func NauticalMiles(v float64) Distance { return Distance{m: v * 1852, unit: "nm"} }

// Furlongs creates a Distance from a number of furlongs.
func Furlongs(v float64) Distance { return Distance{m: v * 201.168, unit: "furlong"} }

// Fathoms creates a Distance from a number of fathoms.
func Fathoms(v float64) Distance { return Distance{m: v * 1.8288, unit: "fathom"} }

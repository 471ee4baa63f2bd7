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

// Package measure provides typed physical quantities for linear
// distance and area.
//
// A quantity can be constructed in any registered unit, converted to
// any other unit of the same kind on demand, combined with other
// quantities through arithmetic, and rendered as text. Magnitudes are
// stored internally in a single base unit per quantity kind (meters
// for distance, square meters for area), so every conversion is a
// single multiplication or division by the registered factor and
// chained conversions stay consistent with direct ones.
//
// The two concrete types, Distance and Area, are immutable values:
// arithmetic always returns a new quantity. They may be shared between
// goroutines freely, and the unit registries are built during package
// initialization and never modified afterwards, so lookups need no
// locking.
//
// Quantities remember the unit they were most recently constructed in
// and use it for display:
//
//	d, err := measure.NewDistance(5, "km")
//	...
//	fmt.Println(d)                 // "5.0 km"
//	mi, err := d.Convert("mi")     // 3.1068559611866697
//
// For interoperation with code that works on dimensioned values, a
// Distance or Area can be converted to and from a
// github.com/ctessum/unit quantity.
package measure

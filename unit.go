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

import "github.com/ctessum/unit"

// This file bridges to github.com/ctessum/unit so that distances and
// areas can flow into code that performs general dimensional analysis.
// The bridge only carries values across; it does not add any quantity
// kinds here.

// Unit returns d as a dimensioned length value.
func (d Distance) Unit() *unit.Unit {
	return unit.New(d.m, unit.Meter)
}

// Unit returns a as a dimensioned area value.
func (a Area) Unit() *unit.Unit {
	return unit.New(a.sqm, unit.Meter2)
}

// DistanceFromUnit converts a dimensioned value into a Distance
// displayed in meters. The value must have length dimensions.
func DistanceFromUnit(u *unit.Unit) (Distance, error) {
	if !u.Dimensions().Matches(unit.Meter) {
		return Distance{}, &IncompatibleQuantityError{
			Op:    "unit conversion",
			Left:  KindDistance.String(),
			Right: u.Dimensions().String(),
		}
	}
	return Distance{m: u.Value(), unit: "m"}, nil
}

// AreaFromUnit converts a dimensioned value into an Area displayed in
// square meters. The value must have area dimensions.
func AreaFromUnit(u *unit.Unit) (Area, error) {
	if !u.Dimensions().Matches(unit.Meter2) {
		return Area{}, &IncompatibleQuantityError{
			Op:    "unit conversion",
			Left:  KindArea.String(),
			Right: u.Dimensions().String(),
		}
	}
	return Area{sqm: u.Value(), unit: "sq_m"}, nil
}

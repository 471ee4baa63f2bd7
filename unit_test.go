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
	"errors"
	"testing"

	"github.com/ctessum/unit"
)

func TestDistanceUnitBridge(t *testing.T) {
	d, _ := NewDistance(5, "km")
	u := d.Unit()
	if u.Value() != 5000 {
		t.Errorf("have %g, want 5000", u.Value())
	}
	if !u.Dimensions().Matches(unit.Meter) {
		t.Errorf("have dimensions %v, want %v", u.Dimensions(), unit.Meter)
	}

	back, err := DistanceFromUnit(u)
	if err != nil {
		t.Fatal(err)
	}
	if back.Meters() != 5000 {
		t.Errorf("have %g m, want 5000 m", back.Meters())
	}
	if back.DefaultUnit() != "m" {
		t.Errorf("have default unit %q, want %q", back.DefaultUnit(), "m")
	}
}

func TestAreaUnitBridge(t *testing.T) {
	a, _ := NewArea(2, "ha")
	u := a.Unit()
	if u.Value() != 20000 {
		t.Errorf("have %g, want 20000", u.Value())
	}
	if !u.Dimensions().Matches(unit.Meter2) {
		t.Errorf("have dimensions %v, want %v", u.Dimensions(), unit.Meter2)
	}

	back, err := AreaFromUnit(u)
	if err != nil {
		t.Fatal(err)
	}
	if back.SquareMeters() != 20000 {
		t.Errorf("have %g sq_m, want 20000 sq_m", back.SquareMeters())
	}
}

func TestUnitBridgeDimensionMismatch(t *testing.T) {
	var incompatibleErr *IncompatibleQuantityError

	if _, err := DistanceFromUnit(unit.New(1, unit.Meter2)); !errors.As(err, &incompatibleErr) {
		t.Errorf("have error type %T, want *IncompatibleQuantityError", err)
	}
	if _, err := AreaFromUnit(unit.New(1, unit.Meter)); !errors.As(err, &incompatibleErr) {
		t.Errorf("have error type %T, want *IncompatibleQuantityError", err)
	}
	if _, err := DistanceFromUnit(unit.New(1, unit.Second)); !errors.As(err, &incompatibleErr) {
		t.Errorf("have error type %T, want *IncompatibleQuantityError", err)
	}
}

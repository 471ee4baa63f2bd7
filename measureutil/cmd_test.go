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

package measureutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonum/floats"
)

const testTolerance = 1.e-9

func TestConvertValue(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{5, "mi", "km", 8.04672},
		{5, "Kilometre", "mi", 3.1068559611866697},
		{1, "sq_km", "ha", 100},
		{2.5, "square mile", "ha", 2.5 * 1609.344 * 1609.344 / 10000},
		{100, "ha", "sq_km", 1},
	}
	for _, test := range tests {
		have, err := ConvertValue(test.value, test.from, test.to)
		if err != nil {
			t.Errorf("ConvertValue(%g, %q, %q): %v", test.value, test.from, test.to, err)
			continue
		}
		if !floats.EqualWithinAbsOrRel(have, test.want, testTolerance, testTolerance) {
			t.Errorf("ConvertValue(%g, %q, %q): have %g, want %g",
				test.value, test.from, test.to, have, test.want)
		}
	}
}

func TestConvertValueErrors(t *testing.T) {
	if _, err := ConvertValue(1, "bogus_unit", "km"); err == nil {
		t.Error("conversion from an unknown unit should have failed")
	}
	if _, err := ConvertValue(1, "km", "bogus_unit"); err == nil {
		t.Error("conversion to an unknown unit should have failed")
	}
	// Cross-kind conversions fail because the target unit is not
	// registered for the source unit's kind.
	if _, err := ConvertValue(1, "km", "sq_km"); err == nil {
		t.Error("cross-kind conversion should have failed")
	}
}

func TestConvertCmd(t *testing.T) {
	out := new(bytes.Buffer)
	Root.SetOutput(out)
	defer Root.SetOutput(nil)

	Root.SetArgs([]string{"convert", "5", "mi", "km"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if have, want := strings.TrimSpace(out.String()), "8.04672"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestConvertCmdPrecision(t *testing.T) {
	out := new(bytes.Buffer)
	Root.SetOutput(out)
	defer Root.SetOutput(nil)

	Root.SetArgs([]string{"convert", "--precision", "2", "5", "km", "mi"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if have, want := strings.TrimSpace(out.String()), "3.11"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestUnitsCmd(t *testing.T) {
	out := new(bytes.Buffer)
	Root.SetOutput(out)
	defer Root.SetOutput(nil)

	Root.SetArgs([]string{"units", "distance"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	for _, want := range []string{"km", "kilometer, kilometre", "1609.344"} {
		if !strings.Contains(s, want) {
			t.Errorf("units output should contain %q", want)
		}
	}
	if strings.Contains(s, "sq_km") {
		t.Error("distance listing should not contain area units")
	}

	out.Reset()
	Root.SetArgs([]string{"units", "volume"})
	if err := Root.Execute(); err == nil {
		t.Error("listing an unknown kind should have failed")
	}
}

/*
Copyright © 2026 the Psychro authors.
This file is part of Psychro.

Psychro is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Psychro is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Psychro.  If not, see <http://www.gnu.org/licenses/>.
*/

package psychro

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// different reports whether a and b differ by more than tolerance.
func different(a, b, tolerance float64) bool {
	return !scalar.EqualWithinAbs(a, b, tolerance)
}

func TestNew(t *testing.T) {
	for _, units := range []UnitSystem{IP, SI} {
		p, err := New(units)
		if err != nil {
			t.Fatalf("New(%v): %v", units, err)
		}
		if p.Units() != units {
			t.Errorf("Units: want %v but have %v", units, p.Units())
		}
	}
}

func TestNewInvalid(t *testing.T) {
	for _, units := range []UnitSystem{0, 3, -1} {
		if _, err := New(units); err == nil {
			t.Errorf("New(%v): want error but have nil", units)
		}
	}
}

func TestTolerance(t *testing.T) {
	// The tolerance is the same physical quantity in both systems:
	// 0.001 °C, which is 0.001·9/5 °F.
	if different(SI.tolerance(), 0.001, 1e-15) {
		t.Errorf("SI tolerance: want 0.001 but have %g", SI.tolerance())
	}
	if different(IP.tolerance(), 0.0018, 1e-15) {
		t.Errorf("IP tolerance: want 0.0018 but have %g", IP.tolerance())
	}
}

func TestUnitSystemString(t *testing.T) {
	tests := []struct {
		units UnitSystem
		want  string
	}{
		{IP, "IP"},
		{SI, "SI"},
		{UnitSystem(9), "UnitSystem(9)"},
	}
	for _, test := range tests {
		if have := test.units.String(); have != test.want {
			t.Errorf("String: want %q but have %q", test.want, have)
		}
	}
}

func TestTemperatureScaleConversions(t *testing.T) {
	if have := TRankineFromTFahrenheit(32); have != 491.67 {
		t.Errorf("TRankineFromTFahrenheit(32): want 491.67 but have %g", have)
	}
	if have := TKelvinFromTCelsius(0); have != 273.15 {
		t.Errorf("TKelvinFromTCelsius(0): want 273.15 but have %g", have)
	}
	if have := TKelvinFromTCelsius(-273.15); have != 0 {
		t.Errorf("TKelvinFromTCelsius(-273.15): want 0 but have %g", have)
	}
}

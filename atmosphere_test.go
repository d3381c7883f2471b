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

import "testing"

// At sea level the standard atmosphere equals the reference constants
// exactly: 101325 Pa and 15 °C in SI, 14.696 Psi and 59 °F in IP.
func TestStandardAtmosphereSeaLevel(t *testing.T) {
	pSI, err := New(SI)
	if err != nil {
		t.Fatal(err)
	}
	if have := pSI.StandardAtmPressure(0); have != 101325 {
		t.Errorf("SI StandardAtmPressure(0): want 101325 but have %g", have)
	}
	if have := pSI.StandardAtmTemperature(0); have != 15 {
		t.Errorf("SI StandardAtmTemperature(0): want 15 but have %g", have)
	}

	pIP, err := New(IP)
	if err != nil {
		t.Fatal(err)
	}
	if have := pIP.StandardAtmPressure(0); have != 14.696 {
		t.Errorf("IP StandardAtmPressure(0): want 14.696 but have %g", have)
	}
	if have := pIP.StandardAtmTemperature(0); have != 59 {
		t.Errorf("IP StandardAtmTemperature(0): want 59 but have %g", have)
	}
}

// Pressure and temperature both fall with altitude in the troposphere,
// and rise below sea level.
func TestStandardAtmosphereLapse(t *testing.T) {
	p, err := New(SI)
	if err != nil {
		t.Fatal(err)
	}
	if have := p.StandardAtmPressure(1000); have >= 101325 {
		t.Errorf("pressure at 1000 m: want < 101325 but have %g", have)
	}
	if have := p.StandardAtmPressure(-500); have <= 101325 {
		t.Errorf("pressure at -500 m: want > 101325 but have %g", have)
	}
	// 6.5 °C per km lapse rate.
	if have := p.StandardAtmTemperature(1000); different(have, 8.5, 1e-9) {
		t.Errorf("temperature at 1000 m: want 8.5 but have %g", have)
	}
}

// StationPressure is the inverse of SeaLevelPressure.
func TestSeaLevelStationPressureRoundTrip(t *testing.T) {
	tests := []struct {
		units           UnitSystem
		stationPressure float64
		altitude        float64
		tDryBulb        float64
	}{
		{SI, 101325, 0, 15},
		{SI, 95000, 500, 20},
		{SI, 84000, 1500, 5},
		{IP, 14.696, 0, 59},
		{IP, 13.5, 2000, 70},
	}
	for _, test := range tests {
		p, err := New(test.units)
		if err != nil {
			t.Fatal(err)
		}
		seaLevel := p.SeaLevelPressure(test.stationPressure, test.altitude, test.tDryBulb)
		if test.altitude > 0 && seaLevel <= test.stationPressure {
			t.Errorf("sea-level pressure %g not above station pressure %g (%+v)", seaLevel, test.stationPressure, test)
		}
		back := p.StationPressure(seaLevel, test.altitude, test.tDryBulb)
		if different(back, test.stationPressure, 1e-9*test.stationPressure) {
			t.Errorf("round trip (%+v): want %g but have %g", test, test.stationPressure, back)
		}
	}
}

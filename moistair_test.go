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

// Enthalpy formulas evaluated at hand-checkable points.
func TestEnthalpy(t *testing.T) {
	p, err := New(SI)
	if err != nil {
		t.Fatal(err)
	}
	// 1.006·25 kJ/kg of dry air.
	if have := p.DryAirEnthalpy(25); different(have, 25150, 1e-9) {
		t.Errorf("DryAirEnthalpy(25): want 25150 but have %g", have)
	}
	// (1.006·25 + 0.01·(2501 + 1.86·25))·1000.
	have, err := p.MoistAirEnthalpy(25, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if different(have, 50625, 1e-9) {
		t.Errorf("MoistAirEnthalpy(25, 0.01): want 50625 but have %g", have)
	}
	// Zero humidity ratio reduces moist air to dry air.
	have, err = p.MoistAirEnthalpy(25, 0)
	if err != nil {
		t.Fatal(err)
	}
	if different(have, p.DryAirEnthalpy(25), 1e-9) {
		t.Errorf("MoistAirEnthalpy(25, 0): want %g but have %g", p.DryAirEnthalpy(25), have)
	}
}

// Check the moist-air property set at 25 °C and W = 0.01 against
// independent evaluation of the component formulas.
func TestMoistAirConsistency(t *testing.T) {
	const (
		tDryBulb = 25.0
		humRatio = 0.01
		pressure = 101325.0
	)
	p, err := New(SI)
	if err != nil {
		t.Fatal(err)
	}

	volume, err := p.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		t.Fatal(err)
	}
	wantVolume := rDryAirSI * TKelvinFromTCelsius(tDryBulb) * (1 + 1.607858*humRatio) / pressure
	if different(volume, wantVolume, 1e-12) {
		t.Errorf("MoistAirVolume: want %g but have %g", wantVolume, volume)
	}

	density, err := p.MoistAirDensity(tDryBulb, humRatio, pressure)
	if err != nil {
		t.Fatal(err)
	}
	if different(density, (1+humRatio)/volume, 1e-12) {
		t.Errorf("MoistAirDensity: want %g but have %g", (1+humRatio)/volume, density)
	}

	degSat, err := p.DegreeOfSaturation(tDryBulb, humRatio, pressure)
	if err != nil {
		t.Fatal(err)
	}
	satHumRatio, err := p.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		t.Fatal(err)
	}
	if different(degSat, humRatio/satHumRatio, 1e-12) {
		t.Errorf("DegreeOfSaturation: want %g but have %g", humRatio/satHumRatio, degSat)
	}
	if degSat <= 0 || degSat >= 1 {
		t.Errorf("DegreeOfSaturation %g outside (0, 1) for subsaturated air", degSat)
	}

	// Dry-air density and volume are reciprocal.
	if have := p.DryAirDensity(tDryBulb, pressure) * p.DryAirVolume(tDryBulb, pressure); different(have, 1, 1e-12) {
		t.Errorf("DryAirDensity·DryAirVolume: want 1 but have %g", have)
	}
}

// The vapor pressure deficit vanishes at saturation and approaches the
// saturation vapor pressure for perfectly dry air.
func TestVaporPressureDeficit(t *testing.T) {
	const (
		tDryBulb = 25.0
		pressure = 101325.0
	)
	p, err := New(SI)
	if err != nil {
		t.Fatal(err)
	}
	deficit, err := p.VaporPressureDeficit(tDryBulb, 0, pressure)
	if err != nil {
		t.Fatal(err)
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		t.Fatal(err)
	}
	if different(deficit, satVapPres, 1e-9) {
		t.Errorf("deficit for dry air: want %g but have %g", satVapPres, deficit)
	}

	satHumRatio, err := p.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		t.Fatal(err)
	}
	deficit, err = p.VaporPressureDeficit(tDryBulb, satHumRatio, pressure)
	if err != nil {
		t.Fatal(err)
	}
	if different(deficit, 0, 1e-6) {
		t.Errorf("deficit at saturation: want 0 but have %g", deficit)
	}

	if v, err := p.VaporPressureDeficit(tDryBulb, -0.01, pressure); err == nil {
		t.Errorf("negative humidity ratio: want error but have %g", v)
	}
}

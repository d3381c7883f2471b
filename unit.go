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
	"fmt"

	"github.com/ctessum/unit"
)

// Dimensioned views of the main results, for composition with code that
// carries physical quantities as github.com/ctessum/unit values. The
// unit package is strictly SI, so these methods refuse to operate on an
// IP calculator rather than guess at a conversion.

var (
	// joulePerKilogram is specific enthalpy [m2 s-2].
	joulePerKilogram = unit.Dimensions{
		unit.LengthDim: 2,
		unit.TimeDim:   -2,
	}
	// meter3PerKilogram is specific volume [m3 kg-1].
	meter3PerKilogram = unit.Dimensions{
		unit.LengthDim: 3,
		unit.MassDim:   -1,
	}
)

func (p *Psychrometrics) checkSI() error {
	if p.isIP() {
		return fmt.Errorf("psychro: dimensioned results are only available in the SI system of units")
	}
	return nil
}

// SatVapPresUnits is SatVapPres with the result dimensioned in Pa.
func (p *Psychrometrics) SatVapPresUnits(tDryBulb float64) (*unit.Unit, error) {
	if err := p.checkSI(); err != nil {
		return nil, err
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return nil, err
	}
	return unit.New(satVapPres, unit.Pascal), nil
}

// MoistAirEnthalpyUnits is MoistAirEnthalpy with the result dimensioned
// in J kg⁻¹.
func (p *Psychrometrics) MoistAirEnthalpyUnits(tDryBulb, humRatio float64) (*unit.Unit, error) {
	if err := p.checkSI(); err != nil {
		return nil, err
	}
	enthalpy, err := p.MoistAirEnthalpy(tDryBulb, humRatio)
	if err != nil {
		return nil, err
	}
	return unit.New(enthalpy, joulePerKilogram), nil
}

// MoistAirVolumeUnits is MoistAirVolume with the result dimensioned in
// m³ kg⁻¹.
func (p *Psychrometrics) MoistAirVolumeUnits(tDryBulb, humRatio, pressure float64) (*unit.Unit, error) {
	if err := p.checkSI(); err != nil {
		return nil, err
	}
	volume, err := p.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		return nil, err
	}
	return unit.New(volume, meter3PerKilogram), nil
}

// MoistAirDensityUnits is MoistAirDensity with the result dimensioned
// in kg m⁻³.
func (p *Psychrometrics) MoistAirDensityUnits(tDryBulb, humRatio, pressure float64) (*unit.Unit, error) {
	if err := p.checkSI(); err != nil {
		return nil, err
	}
	density, err := p.MoistAirDensity(tDryBulb, humRatio, pressure)
	if err != nil {
		return nil, err
	}
	return unit.New(density, unit.KilogramPerMeter3), nil
}

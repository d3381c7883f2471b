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

import "fmt"

// MoistAirEnthalpy returns the enthalpy of moist air in Btu lb⁻¹ [IP]
// or J kg⁻¹ [SI] given a dry-bulb temperature in °F [IP] or °C [SI] and
// a humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 30.
func (p *Psychrometrics) MoistAirEnthalpy(tDryBulb, humRatio float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	if p.isIP() {
		return 0.240*tDryBulb + humRatio*(1061+0.444*tDryBulb), nil
	}
	return (1.006*tDryBulb + humRatio*(2501+1.86*tDryBulb)) * 1000, nil
}

// MoistAirVolume returns the specific volume of moist air in
// ft³ lb⁻¹ of dry air [IP] or m³ kg⁻¹ of dry air [SI] given a dry-bulb
// temperature in °F [IP] or °C [SI], a humidity ratio in
// lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and an atmospheric
// pressure in Psi [IP] or Pa [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 26.
// In IP units rDryAirIP/144 equals 0.370486, the coefficient appearing
// in eqn 26.
func (p *Psychrometrics) MoistAirVolume(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	if p.isIP() {
		return rDryAirIP * TRankineFromTFahrenheit(tDryBulb) * (1 + 1.607858*humRatio) / (144 * pressure), nil
	}
	return rDryAirSI * TKelvinFromTCelsius(tDryBulb) * (1 + 1.607858*humRatio) / pressure, nil
}

// MoistAirDensity returns the density of moist air in lb ft⁻³ [IP] or
// kg m⁻³ [SI] given a dry-bulb temperature in °F [IP] or °C [SI], a
// humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and
// an atmospheric pressure in Psi [IP] or Pa [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 11.
func (p *Psychrometrics) MoistAirDensity(tDryBulb, humRatio, pressure float64) (float64, error) {
	moistAirVolume, err := p.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return (1 + humRatio) / moistAirVolume, nil
}

// DegreeOfSaturation returns the degree of saturation, i.e. the ratio
// of the humidity ratio of the air to the humidity ratio of saturated
// air at the same temperature and pressure, given a dry-bulb
// temperature in °F [IP] or °C [SI], a humidity ratio in
// lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and an atmospheric
// pressure in Psi [IP] or Pa [SI].
// Reference: ASHRAE Handbook—Fundamentals (2009) ch. 1 eqn 12. This
// definition is absent from the 2017 edition.
func (p *Psychrometrics) DegreeOfSaturation(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	satHumRatio, err := p.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return humRatio / satHumRatio, nil
}

// VaporPressureDeficit returns the vapor pressure deficit in Psi [IP]
// or Pa [SI] given a dry-bulb temperature in °F [IP] or °C [SI], a
// humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and
// an atmospheric pressure in Psi [IP] or Pa [SI].
// Reference: Oke (1987) eqn 2.13a.
func (p *Psychrometrics) VaporPressureDeficit(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	relHum, err := p.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return satVapPres * (1 - relHum), nil
}

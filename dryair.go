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

// Dry air property calculations from the perfect gas relationship
// (ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 14, with the universal
// gas constant from eqn 1). The factor 144 in the IP branches converts
// Psi (lb in⁻²) to lb ft⁻².

// DryAirEnthalpy returns the enthalpy of dry air in Btu lb⁻¹ [IP] or
// J kg⁻¹ [SI] given a dry-bulb temperature in °F [IP] or °C [SI].
// Reference: eqn 28.
func (p *Psychrometrics) DryAirEnthalpy(tDryBulb float64) float64 {
	if p.isIP() {
		return 0.240 * tDryBulb
	}
	return 1006 * tDryBulb
}

// DryAirDensity returns the density of dry air in lb ft⁻³ [IP] or
// kg m⁻³ [SI] given a dry-bulb temperature in °F [IP] or °C [SI] and an
// atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) DryAirDensity(tDryBulb, pressure float64) float64 {
	if p.isIP() {
		return (144 * pressure) / rDryAirIP / TRankineFromTFahrenheit(tDryBulb)
	}
	return pressure / rDryAirSI / TKelvinFromTCelsius(tDryBulb)
}

// DryAirVolume returns the specific volume of dry air in ft³ lb⁻¹ [IP]
// or m³ kg⁻¹ [SI] given a dry-bulb temperature in °F [IP] or °C [SI]
// and an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) DryAirVolume(tDryBulb, pressure float64) float64 {
	if p.isIP() {
		return TRankineFromTFahrenheit(tDryBulb) * rDryAirIP / (144 * pressure)
	}
	return TKelvinFromTCelsius(tDryBulb) * rDryAirSI / pressure
}

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

import "math"

// StandardAtmPressure returns the standard atmosphere barometric
// pressure in Psi [IP] or Pa [SI] given an altitude in ft [IP] or
// m [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 3.
func (p *Psychrometrics) StandardAtmPressure(altitude float64) float64 {
	if p.isIP() {
		return 14.696 * math.Pow(1-6.8754e-06*altitude, 5.2559)
	}
	return 101325 * math.Pow(1-2.25577e-05*altitude, 5.2559)
}

// StandardAtmTemperature returns the standard atmosphere dry-bulb
// temperature in °F [IP] or °C [SI] given an altitude in ft [IP] or
// m [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 4.
func (p *Psychrometrics) StandardAtmTemperature(altitude float64) float64 {
	if p.isIP() {
		return 59 - 0.00356620*altitude
	}
	return 15 - 0.0065*altitude
}

// SeaLevelPressure returns the sea-level barometric pressure in
// Psi [IP] or Pa [SI] given an observed station pressure in Psi [IP] or
// Pa [SI], an altitude in ft [IP] or m [SI], and a dry-bulb temperature
// in °F [IP] or °C [SI].
//
// The standard procedure in the US is to use for tDryBulb the average
// of the current station temperature and the station temperature from
// twelve hours ago.
//
// Reference: Hess SL, Introduction to theoretical meteorology, Holt
// Rinehart and Winston, NY 1959, ch. 6.5; Stull RB, Meteorology for
// scientists and engineers, 2nd edition, Brooks/Cole 2000, ch. 1.
func (p *Psychrometrics) SeaLevelPressure(stationPressure, altitude, tDryBulb float64) float64 {
	var scaleHeight float64
	if p.isIP() {
		// Average temperature in the column of air, assuming a lapse
		// rate of 3.6 °F per 1000 ft.
		tColumn := tDryBulb + 0.0036*altitude/2
		scaleHeight = 53.351 * TRankineFromTFahrenheit(tColumn)
	} else {
		// Average temperature in the column of air, assuming a lapse
		// rate of 6.5 °C per km.
		tColumn := tDryBulb + 0.0065*altitude/2
		scaleHeight = 287.055 * TKelvinFromTCelsius(tColumn) / 9.807
	}
	return stationPressure * math.Exp(altitude/scaleHeight)
}

// StationPressure returns the station pressure in Psi [IP] or Pa [SI]
// given a sea-level barometric pressure in Psi [IP] or Pa [SI], an
// altitude in ft [IP] or m [SI], and a dry-bulb temperature in °F [IP]
// or °C [SI]. It is the inverse of SeaLevelPressure.
func (p *Psychrometrics) StationPressure(seaLevelPressure, altitude, tDryBulb float64) float64 {
	return seaLevelPressure / p.SeaLevelPressure(1, altitude, tDryBulb)
}

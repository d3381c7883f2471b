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
	"math"
)

// SatVapPres returns the saturation vapor pressure in Psi [IP] or
// Pa [SI] given a dry-bulb temperature in °F [IP] or °C [SI]. The
// temperature must be within the fitted range of the equations:
// [-148, 392] °F or [-100, 200] °C.
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 5 and 6.
func (p *Psychrometrics) SatVapPres(tDryBulb float64) (float64, error) {
	var lnPws float64
	if p.isIP() {
		if tDryBulb < -148 || tDryBulb > 392 {
			return 0, fmt.Errorf("psychro: dry-bulb temperature %g °F is outside range [-148, 392] °F", tDryBulb)
		}
		t := TRankineFromTFahrenheit(tDryBulb)
		if tDryBulb <= 32 {
			lnPws = -1.0214165e4/t - 4.8932428 - 5.3765794e-3*t + 1.9202377e-7*t*t +
				3.5575832e-10*math.Pow(t, 3) - 9.0344688e-14*math.Pow(t, 4) + 4.1635019*math.Log(t)
		} else {
			lnPws = -1.0440397e4/t - 1.1294650e1 - 2.7022355e-2*t + 1.2890360e-5*t*t -
				2.4780681e-9*math.Pow(t, 3) + 6.5459673*math.Log(t)
		}
	} else {
		if tDryBulb < -100 || tDryBulb > 200 {
			return 0, fmt.Errorf("psychro: dry-bulb temperature %g °C is outside range [-100, 200] °C", tDryBulb)
		}
		t := TKelvinFromTCelsius(tDryBulb)
		if tDryBulb <= 0 {
			lnPws = -5.6745359e3/t + 6.3925247 - 9.677843e-3*t + 6.2215701e-7*t*t +
				2.0747825e-9*math.Pow(t, 3) - 9.484024e-13*math.Pow(t, 4) + 4.1635019*math.Log(t)
		} else {
			lnPws = -5.8002206e3/t + 1.3914993 - 4.8640239e-2*t + 4.1764768e-5*t*t -
				1.4452093e-8*math.Pow(t, 3) + 6.5459673*math.Log(t)
		}
	}
	return math.Exp(lnPws), nil
}

// SatHumRatio returns the humidity ratio of saturated air in
// lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI] given a dry-bulb
// temperature in °F [IP] or °C [SI] and an atmospheric pressure in
// Psi [IP] or Pa [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 36, solved for W.
func (p *Psychrometrics) SatHumRatio(tDryBulb, pressure float64) (float64, error) {
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return 0.621945 * satVapPres / (pressure - satVapPres), nil
}

// SatAirEnthalpy returns the enthalpy of saturated air in Btu lb⁻¹ [IP]
// or J kg⁻¹ [SI] given a dry-bulb temperature in °F [IP] or °C [SI] and
// an atmospheric pressure in Psi [IP] or Pa [SI].
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1.
func (p *Psychrometrics) SatAirEnthalpy(tDryBulb, pressure float64) (float64, error) {
	satHumRatio, err := p.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return p.MoistAirEnthalpy(tDryBulb, satHumRatio)
}

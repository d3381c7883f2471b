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

	"gonum.org/v1/gonum/floats/scalar"
)

// HumRatioFromTWetBulb returns the humidity ratio in lb_H₂O lb_Air⁻¹
// [IP] or kg_H₂O kg_Air⁻¹ [SI] given dry-bulb and wet-bulb temperatures
// in °F [IP] or °C [SI] and an atmospheric pressure in Psi [IP] or
// Pa [SI]. The coefficients branch on whether the wet bulb is above or
// below the freezing point of water.
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1 eqn 33 and 35.
func (p *Psychrometrics) HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	if tWetBulb > tDryBulb {
		return 0, fmt.Errorf("psychro: wet-bulb temperature %g is above dry-bulb temperature %g", tWetBulb, tDryBulb)
	}
	wsStar, err := p.SatHumRatio(tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	var humRatio float64
	if p.isIP() {
		if tWetBulb >= 32 {
			humRatio = ((1093-0.556*tWetBulb)*wsStar - 0.240*(tDryBulb-tWetBulb)) /
				(1093 + 0.444*tDryBulb - tWetBulb)
		} else {
			humRatio = ((1220-0.04*tWetBulb)*wsStar - 0.240*(tDryBulb-tWetBulb)) /
				(1220 + 0.444*tDryBulb - 0.48*tWetBulb)
		}
	} else {
		if tWetBulb >= 0 {
			humRatio = ((2501-2.326*tWetBulb)*wsStar - 1.006*(tDryBulb-tWetBulb)) /
				(2501 + 1.86*tDryBulb - 4.186*tWetBulb)
		} else {
			humRatio = ((2830-0.24*tWetBulb)*wsStar - 1.006*(tDryBulb-tWetBulb)) /
				(2830 + 1.86*tDryBulb - 2.1*tWetBulb)
		}
	}
	return humRatio, nil
}

// TWetBulbFromHumRatio returns the wet-bulb temperature in °F [IP] or
// °C [SI] given a dry-bulb temperature in °F [IP] or °C [SI], a
// humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and
// an atmospheric pressure in Psi [IP] or Pa [SI].
//
// The wet-bulb/humidity-ratio relation (ASHRAE Handbook—Fundamentals
// (2017) ch. 1 eqn 33 and 35) has no closed-form inverse, so the wet
// bulb is found by bisection. The dew point is a physical lower bound
// for the wet bulb and the dry bulb an upper bound, so the answer is
// bracketed from the start and convergence is geometric.
func (p *Psychrometrics) TWetBulbFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}

	tDewPoint, err := p.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}

	sup := tDryBulb // upper bound
	inf := tDewPoint
	tWetBulb := (inf + sup) / 2

	for i := 0; !scalar.EqualWithinAbs(sup, inf, p.tol); i++ {
		if i >= maxIter {
			return 0, fmt.Errorf("psychro: wet bulb for humidity ratio %g: %w", humRatio, ErrNotConverged)
		}

		// Humidity ratio the current estimate would produce.
		wStar, err := p.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
		if err != nil {
			return 0, err
		}
		if wStar > humRatio {
			sup = tWetBulb
		} else {
			inf = tWetBulb
		}
		tWetBulb = (sup + inf) / 2
	}
	return tWetBulb, nil
}

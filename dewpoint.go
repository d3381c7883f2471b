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

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// TDewPointFromVapPres returns the dew-point temperature in °F [IP] or
// °C [SI] given a dry-bulb temperature in °F [IP] or °C [SI] and a
// partial pressure of water vapor in Psi [IP] or Pa [SI].
//
// The dew point is found by inverting the equation giving the water
// vapor pressure at saturation as a function of temperature (ASHRAE
// Handbook—Fundamentals (2017) ch. 1 eqn 5 and 6) rather than using the
// regressions provided by ASHRAE (eqn 37 and 38), which are much less
// accurate and have a narrower range of validity. Newton-Raphson is
// applied to the logarithm of the saturation vapor pressure, a very
// smooth function of temperature; convergence is usually achieved in
// 3 to 5 iterations. The dry-bulb temperature is only used as the
// initial guess.
func (p *Psychrometrics) TDewPointFromVapPres(tDryBulb, vapPres float64) (float64, error) {
	var tMin, tMax, stepSize float64
	if p.isIP() {
		tMin, tMax = -148, 392
		stepSize = 0.01 * 9 / 5
	} else {
		tMin, tMax = -100, 200
		stepSize = 0.01
	}
	tMidPoint := (tMin + tMax) / 2 // midpoint of the domain of validity

	vapPresMin, err := p.SatVapPres(tMin)
	if err != nil {
		return 0, err
	}
	vapPresMax, err := p.SatVapPres(tMax)
	if err != nil {
		return 0, err
	}
	if vapPres < vapPresMin || vapPres > vapPresMax {
		return 0, fmt.Errorf("psychro: partial pressure of water vapor %g is outside range [%g, %g] of validity of the saturation equations", vapPres, vapPresMin, vapPresMax)
	}

	// The estimate stays clamped to [tMin, tMax] and the difference
	// step always points toward the interior of the domain, so the
	// saturation equations are never evaluated outside their fitted
	// range and the error return can be discarded here.
	lnSatVapPres := func(t float64) float64 {
		pws, _ := p.SatVapPres(t)
		return math.Log(pws)
	}

	tDewPoint := math.Min(math.Max(tDryBulb, tMin), tMax) // first guess
	lnVP := math.Log(vapPres)

	for i := 0; i < maxIter; i++ {
		tIter := tDewPoint
		lnVPIter := lnSatVapPres(tIter)

		// One-sided derivative, stepping away from the nearer bound.
		formula := fd.Forward
		if tIter > tMidPoint {
			formula = fd.Backward
		}
		dLnVP := fd.Derivative(lnSatVapPres, tIter, &fd.Settings{
			Formula:     formula,
			Step:        stepSize,
			OriginKnown: true,
			OriginValue: lnVPIter,
		})

		// New estimate, bounded by the domain of validity of eqn 5 and 6.
		tDewPoint = tIter - (lnVPIter-lnVP)/dLnVP
		tDewPoint = math.Max(tDewPoint, tMin)
		tDewPoint = math.Min(tDewPoint, tMax)

		if scalar.EqualWithinAbs(tDewPoint, tIter, p.tol) {
			// The dew point cannot physically exceed the dry-bulb
			// temperature.
			return math.Min(tDewPoint, tDryBulb), nil
		}
	}
	return 0, fmt.Errorf("psychro: dew point for vapor pressure %g: %w", vapPres, ErrNotConverged)
}

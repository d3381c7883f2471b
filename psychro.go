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

// Package psychro calculates thermodynamic properties of gas-vapor
// mixtures and standard atmosphere suitable for most engineering,
// physical and meteorological applications.
//
// Most of the functions are an implementation of the formulae found in
// the 2017 ASHRAE Handbook—Fundamentals, Chapter 1, in both the
// International System (SI) and Imperial (IP) units. The reference for
// each calculation is given in its documentation.
//
// All calculations are methods on a Psychrometrics value, which fixes
// the system of units and the convergence tolerance used by the
// iterative solvers. A Psychrometrics value is immutable after creation,
// so it is safe for concurrent use.
package psychro

import (
	"errors"
	"fmt"
)

// UnitSystem is a system of units for psychrometric calculations.
type UnitSystem int

// The two supported systems of units.
const (
	// IP is the Imperial system: °F, Psi, ft, lb, Btu.
	IP UnitSystem = iota + 1
	// SI is the International System: °C, Pa, m, kg, J.
	SI
)

func (u UnitSystem) String() string {
	switch u {
	case IP:
		return "IP"
	case SI:
		return "SI"
	default:
		return fmt.Sprintf("UnitSystem(%d)", int(u))
	}
}

// tolerance returns the convergence tolerance for iteratively solved
// temperatures, in the native degree unit of the system. The physical
// tolerance is the same in both systems.
func (u UnitSystem) tolerance() float64 {
	if u == IP {
		return 0.001 * 9 / 5
	}
	return 0.001
}

// Gas constant for dry air and temperature scale offsets.
// Reference: ASHRAE Handbook—Fundamentals (2017) ch. 1.
const (
	rDryAirIP = 53.350  // ft lbf lb_DryAir⁻¹ °R⁻¹
	rDryAirSI = 287.042 // J kg_DryAir⁻¹ K⁻¹

	zeroFahrenheitAsRankine = 459.67
	zeroCelsiusAsKelvin     = 273.15
)

// maxIter bounds both iterative solvers. Newton-Raphson on the
// saturation curve converges in 3 to 5 iterations and bisection over the
// widest possible interval needs fewer than 60, so hitting the bound
// indicates ill-conditioned (e.g. NaN) input rather than slow progress.
const maxIter = 100

// ErrNotConverged is returned, wrapped with details of the calculation,
// when an iterative solver exceeds its iteration bound without reaching
// the configured tolerance.
var ErrNotConverged = errors.New("iteration did not converge")

// TRankineFromTFahrenheit converts a temperature in degrees Fahrenheit
// (°F) to degrees Rankine (°R). The conversion is exact.
func TRankineFromTFahrenheit(tFahrenheit float64) float64 {
	return tFahrenheit + zeroFahrenheitAsRankine
}

// TKelvinFromTCelsius converts a temperature in degrees Celsius (°C) to
// Kelvin (K). The conversion is exact.
func TKelvinFromTCelsius(tCelsius float64) float64 {
	return tCelsius + zeroCelsiusAsKelvin
}

// Psychrometrics calculates properties of moist air in a fixed system
// of units. Create one with New; its methods perform no logging and
// have no side effects.
type Psychrometrics struct {
	units UnitSystem
	tol   float64
}

// New creates a Psychrometrics calculator for the given system of
// units, which must be either IP or SI.
func New(units UnitSystem) (*Psychrometrics, error) {
	switch units {
	case IP, SI:
	default:
		return nil, fmt.Errorf("psychro: system of units must be either IP or SI, got %v", units)
	}
	return &Psychrometrics{units: units, tol: units.tolerance()}, nil
}

// Units returns the system of units this calculator was created with.
func (p *Psychrometrics) Units() UnitSystem { return p.units }

// isIP reports whether the active system of units is Imperial.
func (p *Psychrometrics) isIP() bool { return p.units == IP }

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

// Conversions between vapor pressure, relative humidity, humidity
// ratio, and the three characteristic temperatures of moist air.
// Unless noted otherwise the reference for every formula is the
// ASHRAE Handbook—Fundamentals (2017) ch. 1.

// VapPresFromRelHum returns the partial pressure of water vapor in
// moist air in Psi [IP] or Pa [SI] given a dry-bulb temperature in
// °F [IP] or °C [SI] and a relative humidity in [0, 1].
// Reference: eqn 12, 22.
func (p *Psychrometrics) VapPresFromRelHum(tDryBulb, relHum float64) (float64, error) {
	if relHum < 0 || relHum > 1 {
		return 0, fmt.Errorf("psychro: relative humidity %g is outside range [0, 1]", relHum)
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return relHum * satVapPres, nil
}

// RelHumFromVapPres returns the relative humidity in [0, 1] given a
// dry-bulb temperature in °F [IP] or °C [SI] and a partial pressure of
// water vapor in Psi [IP] or Pa [SI].
// Reference: eqn 12, 22.
func (p *Psychrometrics) RelHumFromVapPres(tDryBulb, vapPres float64) (float64, error) {
	if vapPres < 0 {
		return 0, fmt.Errorf("psychro: partial pressure of water vapor cannot be negative, got %g", vapPres)
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return vapPres / satVapPres, nil
}

// VapPresFromTDewPoint returns the partial pressure of water vapor in
// moist air in Psi [IP] or Pa [SI] given a dew-point temperature in
// °F [IP] or °C [SI].
// Reference: eqn 36.
func (p *Psychrometrics) VapPresFromTDewPoint(tDewPoint float64) (float64, error) {
	return p.SatVapPres(tDewPoint)
}

// HumRatioFromVapPres returns the humidity ratio in lb_H₂O lb_Air⁻¹
// [IP] or kg_H₂O kg_Air⁻¹ [SI] given a partial pressure of water vapor
// and an atmospheric pressure, both in Psi [IP] or Pa [SI]. The vapor
// pressure must be strictly below the total pressure.
// Reference: eqn 20.
func (p *Psychrometrics) HumRatioFromVapPres(vapPres, pressure float64) (float64, error) {
	if vapPres < 0 {
		return 0, fmt.Errorf("psychro: partial pressure of water vapor cannot be negative, got %g", vapPres)
	}
	if vapPres >= pressure {
		return 0, fmt.Errorf("psychro: partial pressure of water vapor %g must be below total pressure %g", vapPres, pressure)
	}
	return 0.621945 * vapPres / (pressure - vapPres), nil
}

// VapPresFromHumRatio returns the partial pressure of water vapor in
// moist air in Psi [IP] or Pa [SI] given a humidity ratio in
// lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI] and an atmospheric
// pressure in Psi [IP] or Pa [SI].
// Reference: eqn 20, solved for pw.
func (p *Psychrometrics) VapPresFromHumRatio(humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	return pressure * humRatio / (0.621945 + humRatio), nil
}

// HumRatioFromRelHum returns the humidity ratio in lb_H₂O lb_Air⁻¹ [IP]
// or kg_H₂O kg_Air⁻¹ [SI] given a dry-bulb temperature in °F [IP] or
// °C [SI], a relative humidity in [0, 1], and an atmospheric pressure
// in Psi [IP] or Pa [SI].
func (p *Psychrometrics) HumRatioFromRelHum(tDryBulb, relHum, pressure float64) (float64, error) {
	vapPres, err := p.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return p.HumRatioFromVapPres(vapPres, pressure)
}

// RelHumFromHumRatio returns the relative humidity in [0, 1] given a
// dry-bulb temperature in °F [IP] or °C [SI], a humidity ratio in
// lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and an atmospheric
// pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) RelHumFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	vapPres, err := p.VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return p.RelHumFromVapPres(tDryBulb, vapPres)
}

// HumRatioFromTDewPoint returns the humidity ratio in lb_H₂O lb_Air⁻¹
// [IP] or kg_H₂O kg_Air⁻¹ [SI] given a dew-point temperature in °F [IP]
// or °C [SI] and an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) HumRatioFromTDewPoint(tDewPoint, pressure float64) (float64, error) {
	vapPres, err := p.SatVapPres(tDewPoint)
	if err != nil {
		return 0, err
	}
	return p.HumRatioFromVapPres(vapPres, pressure)
}

// TDewPointFromHumRatio returns the dew-point temperature in °F [IP] or
// °C [SI] given a dry-bulb temperature in °F [IP] or °C [SI], a
// humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or kg_H₂O kg_Air⁻¹ [SI], and
// an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) TDewPointFromHumRatio(tDryBulb, humRatio, pressure float64) (float64, error) {
	if humRatio < 0 {
		return 0, fmt.Errorf("psychro: humidity ratio cannot be negative, got %g", humRatio)
	}
	vapPres, err := p.VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return p.TDewPointFromVapPres(tDryBulb, vapPres)
}

// RelHumFromTDewPoint returns the relative humidity in [0, 1] given
// dry-bulb and dew-point temperatures in °F [IP] or °C [SI].
// Reference: eqn 22.
func (p *Psychrometrics) RelHumFromTDewPoint(tDryBulb, tDewPoint float64) (float64, error) {
	if tDewPoint > tDryBulb {
		return 0, fmt.Errorf("psychro: dew-point temperature %g is above dry-bulb temperature %g", tDewPoint, tDryBulb)
	}
	vapPres, err := p.SatVapPres(tDewPoint)
	if err != nil {
		return 0, err
	}
	satVapPres, err := p.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return vapPres / satVapPres, nil
}

// RelHumFromTWetBulb returns the relative humidity in [0, 1] given
// dry-bulb and wet-bulb temperatures in °F [IP] or °C [SI] and an
// atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) RelHumFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	if tWetBulb > tDryBulb {
		return 0, fmt.Errorf("psychro: wet-bulb temperature %g is above dry-bulb temperature %g", tWetBulb, tDryBulb)
	}
	humRatio, err := p.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return p.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
}

// TDewPointFromRelHum returns the dew-point temperature in °F [IP] or
// °C [SI] given a dry-bulb temperature in °F [IP] or °C [SI] and a
// relative humidity in [0, 1].
func (p *Psychrometrics) TDewPointFromRelHum(tDryBulb, relHum float64) (float64, error) {
	if relHum < 0 || relHum > 1 {
		return 0, fmt.Errorf("psychro: relative humidity %g is outside range [0, 1]", relHum)
	}
	vapPres, err := p.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return p.TDewPointFromVapPres(tDryBulb, vapPres)
}

// TDewPointFromTWetBulb returns the dew-point temperature in °F [IP] or
// °C [SI] given dry-bulb and wet-bulb temperatures in °F [IP] or
// °C [SI] and an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) TDewPointFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (float64, error) {
	if tWetBulb > tDryBulb {
		return 0, fmt.Errorf("psychro: wet-bulb temperature %g is above dry-bulb temperature %g", tWetBulb, tDryBulb)
	}
	humRatio, err := p.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return p.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
}

// TWetBulbFromTDewPoint returns the wet-bulb temperature in °F [IP] or
// °C [SI] given dry-bulb and dew-point temperatures in °F [IP] or
// °C [SI] and an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) TWetBulbFromTDewPoint(tDryBulb, tDewPoint, pressure float64) (float64, error) {
	if tDewPoint > tDryBulb {
		return 0, fmt.Errorf("psychro: dew-point temperature %g is above dry-bulb temperature %g", tDewPoint, tDryBulb)
	}
	humRatio, err := p.HumRatioFromTDewPoint(tDewPoint, pressure)
	if err != nil {
		return 0, err
	}
	return p.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

// TWetBulbFromRelHum returns the wet-bulb temperature in °F [IP] or
// °C [SI] given a dry-bulb temperature in °F [IP] or °C [SI], a
// relative humidity in [0, 1], and an atmospheric pressure in Psi [IP]
// or Pa [SI].
func (p *Psychrometrics) TWetBulbFromRelHum(tDryBulb, relHum, pressure float64) (float64, error) {
	if relHum < 0 || relHum > 1 {
		return 0, fmt.Errorf("psychro: relative humidity %g is outside range [0, 1]", relHum)
	}
	humRatio, err := p.HumRatioFromRelHum(tDryBulb, relHum, pressure)
	if err != nil {
		return 0, err
	}
	return p.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

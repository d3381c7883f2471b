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

// PsychrometricValues holds the full set of moist-air properties
// derived from dry-bulb temperature, pressure, and any one humidity
// measure. Units follow the system of units of the calculator that
// produced it.
type PsychrometricValues struct {
	// HumRatio is the humidity ratio in lb_H₂O lb_Air⁻¹ [IP] or
	// kg_H₂O kg_Air⁻¹ [SI].
	HumRatio float64
	// TWetBulb is the wet-bulb temperature in °F [IP] or °C [SI].
	TWetBulb float64
	// TDewPoint is the dew-point temperature in °F [IP] or °C [SI].
	TDewPoint float64
	// RelHum is the relative humidity in [0, 1].
	RelHum float64
	// VapPres is the partial pressure of water vapor in moist air in
	// Psi [IP] or Pa [SI].
	VapPres float64
	// MoistAirEnthalpy is in Btu lb⁻¹ [IP] or J kg⁻¹ [SI].
	MoistAirEnthalpy float64
	// MoistAirVolume is in ft³ lb⁻¹ [IP] or m³ kg⁻¹ [SI].
	MoistAirVolume float64
	// DegreeOfSaturation is the ratio of the humidity ratio to the
	// humidity ratio of saturated air at the same temperature and
	// pressure [unitless].
	DegreeOfSaturation float64
}

// derived fills in the fields of v that follow directly from the
// humidity ratio, shared by the three Calc entry points.
func (p *Psychrometrics) derived(tDryBulb, pressure float64, v *PsychrometricValues) error {
	var err error
	if v.VapPres, err = p.VapPresFromHumRatio(v.HumRatio, pressure); err != nil {
		return err
	}
	if v.MoistAirEnthalpy, err = p.MoistAirEnthalpy(tDryBulb, v.HumRatio); err != nil {
		return err
	}
	if v.MoistAirVolume, err = p.MoistAirVolume(tDryBulb, v.HumRatio, pressure); err != nil {
		return err
	}
	if v.DegreeOfSaturation, err = p.DegreeOfSaturation(tDryBulb, v.HumRatio, pressure); err != nil {
		return err
	}
	return nil
}

// CalcFromTWetBulb returns the full set of psychrometric values given a
// dry-bulb temperature in °F [IP] or °C [SI], a wet-bulb temperature in
// °F [IP] or °C [SI], and an atmospheric pressure in Psi [IP] or
// Pa [SI].
func (p *Psychrometrics) CalcFromTWetBulb(tDryBulb, tWetBulb, pressure float64) (PsychrometricValues, error) {
	v := PsychrometricValues{TWetBulb: tWetBulb}
	var err error
	if v.HumRatio, err = p.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.TDewPoint, err = p.TDewPointFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.RelHum, err = p.RelHumFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if err = p.derived(tDryBulb, pressure, &v); err != nil {
		return PsychrometricValues{}, err
	}
	return v, nil
}

// CalcFromTDewPoint returns the full set of psychrometric values given
// a dry-bulb temperature in °F [IP] or °C [SI], a dew-point temperature
// in °F [IP] or °C [SI], and an atmospheric pressure in Psi [IP] or
// Pa [SI].
func (p *Psychrometrics) CalcFromTDewPoint(tDryBulb, tDewPoint, pressure float64) (PsychrometricValues, error) {
	v := PsychrometricValues{TDewPoint: tDewPoint}
	var err error
	if v.HumRatio, err = p.HumRatioFromTDewPoint(tDewPoint, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.TWetBulb, err = p.TWetBulbFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.RelHum, err = p.RelHumFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if err = p.derived(tDryBulb, pressure, &v); err != nil {
		return PsychrometricValues{}, err
	}
	return v, nil
}

// CalcFromRelHum returns the full set of psychrometric values given a
// dry-bulb temperature in °F [IP] or °C [SI], a relative humidity in
// [0, 1], and an atmospheric pressure in Psi [IP] or Pa [SI].
func (p *Psychrometrics) CalcFromRelHum(tDryBulb, relHum, pressure float64) (PsychrometricValues, error) {
	v := PsychrometricValues{RelHum: relHum}
	var err error
	if v.HumRatio, err = p.HumRatioFromRelHum(tDryBulb, relHum, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.TWetBulb, err = p.TWetBulbFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if v.TDewPoint, err = p.TDewPointFromHumRatio(tDryBulb, v.HumRatio, pressure); err != nil {
		return PsychrometricValues{}, err
	}
	if err = p.derived(tDryBulb, pressure, &v); err != nil {
		return PsychrometricValues{}, err
	}
	return v, nil
}

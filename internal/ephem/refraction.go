package ephem

import "math"

// Atmosphere tunes the refraction correction. The zero value selects the
// reference atmosphere the formula was fitted for (101.0 kPa, 283.0 K).
type Atmosphere struct {
	Pressure    float64 // kPa
	Temperature float64 // K
}

func (a Atmosphere) orReference() Atmosphere {
	if a.Pressure <= 0 {
		a.Pressure = refPressureKPa
	}
	if a.Temperature <= 0 {
		a.Temperature = refTemperatureK
	}
	return a
}

// parallaxCorrection returns the diurnal parallax to subtract from the
// altitude, for the Sun at the given geocentric distance.
func parallaxCorrection(distanceAU, altitude float64) float64 {
	return math.Asin(earthRadiusCm/(distanceAU*auCm)) * math.Cos(altitude)
}

// refractionCorrection returns the empirical atmospheric refraction to add to
// the (parallax-corrected) altitude, scaled for the given atmosphere.
//
// The second return value reports whether the formula was inside its fitted
// domain. Outside it the correction is still returned when finite and small;
// a non-physical (non-finite or oversized) value comes back as 0.
func refractionCorrection(altitude float64, atm Atmosphere) (delta float64, ok bool) {
	atm = atm.orReference()

	delta = refractA / math.Tan(altitude+refractB/(altitude+refractC))
	delta *= atm.Pressure / refPressureKPa * refTemperatureK / atm.Temperature

	if math.IsNaN(delta) || math.IsInf(delta, 0) || math.Abs(delta) > maxRefraction {
		return 0, false
	}
	// Below the pole of the inner denominator the formula is extrapolating.
	if altitude <= -refractC {
		return delta, false
	}
	return delta, true
}

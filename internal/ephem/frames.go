package ephem

import "math"

// Equatorial holds geocentric equatorial coordinates.
type Equatorial struct {
	RightAscension float64 // rad, [0, 2pi)
	Declination    float64 // rad
}

// Horizontal holds observer-relative horizontal coordinates.
// Azimuth uses the celestial-astronomy convention: 0 = South, pi/2 = West.
type Horizontal struct {
	Azimuth  float64 // rad, [0, 2pi)
	Altitude float64 // rad
}

// EclipticToEquatorial converts the apparent ecliptic position to equatorial
// coordinates. The Sun's ecliptic latitude is taken as zero.
func EclipticToEquatorial(ecl Ecliptic) Equatorial {
	sinLon := math.Sin(ecl.Longitude)
	cosObl := math.Cos(ecl.Obliquity)
	sinObl := math.Sin(ecl.Obliquity)
	return Equatorial{
		RightAscension: norm2Pi(math.Atan2(cosObl*sinLon, math.Cos(ecl.Longitude))),
		Declination:    math.Asin(sinObl * sinLon),
	}
}

// SiderealTime returns the apparent Greenwich sidereal time in radians:
// Greenwich mean sidereal time corrected for the equation of the equinoxes.
func SiderealTime(ts Timescale, ecl Ecliptic) float64 {
	gmst := gmst0 + gmst1*ts.DaysJ2000 + gmst2*ts.T2 + gmst3*ts.T2*ts.T
	return gmst + ecl.NutationLongitude*math.Cos(ecl.Obliquity)
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for an observer, given the apparent Greenwich sidereal time.
// Cosines of latitude and declination are taken as sqrt(1-sin^2), valid since
// both angles stay within [-pi/2, pi/2].
func EquatorialToHorizontal(lat, lon float64, eq Equatorial, agst float64) Horizontal {
	ha := agst + lon - eq.RightAscension // local hour angle

	sinHa := math.Sin(ha)
	cosHa := math.Cos(ha)

	sinDec := math.Sin(eq.Declination)
	cosDec := math.Sqrt(1.0 - sinDec*sinDec)
	tanDec := sinDec / cosDec

	sinLat := math.Sin(lat)
	cosLat := math.Sqrt(1.0 - sinLat*sinLat)

	return Horizontal{
		Azimuth:  norm2Pi(math.Atan2(sinHa, cosHa*sinLat-tanDec*cosLat)),
		Altitude: math.Asin(sinLat*sinDec + cosLat*cosDec*cosHa),
	}
}

// HorizontalToEquatorial converts (refraction-corrected) horizontal
// coordinates back to an hour angle and declination. The azimuth must be in
// the south-zero convention.
func HorizontalToEquatorial(lat float64, hz Horizontal) (hourAngle, declination float64) {
	cosAz := math.Cos(hz.Azimuth)
	sinAz := math.Sin(hz.Azimuth)

	sinAlt := math.Sin(hz.Altitude)
	cosAlt := math.Sqrt(1.0 - sinAlt*sinAlt)
	tanAlt := sinAlt / cosAlt

	sinLat := math.Sin(lat)
	cosLat := math.Sqrt(1.0 - sinLat*sinLat)

	hourAngle = norm2Pi(math.Atan2(sinAz, cosAz*sinLat+tanAlt*cosLat))
	declination = math.Asin(sinLat*sinAlt - cosLat*cosAlt*cosAz)
	return hourAngle, declination
}

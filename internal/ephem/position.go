// Package ephem computes the apparent position of the Sun for an observer on
// Earth at an instant of Universal Time.
//
// The computation is a single forward pass through five stateless stages:
// time normalization, the ecliptic series, frame transformations, the
// atmospheric corrections, and convention normalization. Every call is a pure
// function of its inputs; concurrent calls are safe.
//
// Accuracy is arc-minute class, intended for applications such as solar-energy
// yield estimation where runtime matters more than milli-arcsecond precision.
package ephem

import (
	"fmt"
	"math"
)

// Observer is a geographic location, east-positive longitude. Angles are in
// radians unless Options.UseDegrees is set on the call consuming it.
type Observer struct {
	Longitude  float64
	Latitude   float64
	Atmosphere Atmosphere // optional refraction tuning; zero value = reference
}

// Options selects the output conventions of a computation.
type Options struct {
	// UseDegrees interprets the observer's coordinates as degrees and
	// converts the final angular outputs to degrees.
	UseDegrees bool

	// UseNorthEqualsZero shifts the azimuth (and hour angle) zero point from
	// the celestial south-zero convention to the compass north-zero one.
	UseNorthEqualsZero bool

	// ComputeRefrEquatorial back-converts the refraction-corrected horizontal
	// coordinates to an hour angle and declination.
	ComputeRefrEquatorial bool

	// ComputeDistance reports the geocentric distance on the result. The
	// distance series is always evaluated internally (the parallax correction
	// needs it); this flag only controls whether the field is populated.
	ComputeDistance bool
}

// Position is the result aggregate, filled once per call in pipeline order.
//
// The altitude is retained at each correction step: geometric (Altitude),
// after diurnal parallax (AltitudeParallax), and after atmospheric refraction
// (AltitudeRefract). Azimuth is never corrected.
//
// With Options.UseDegrees, the final fields Azimuth, Altitude,
// AltitudeParallax, AltitudeRefract, HourAngleRefract and DeclinationRefract
// are in degrees; intermediate fields (Longitude, RightAscension,
// Declination, Obliquity, SiderealTime) always stay in radians.
type Position struct {
	// Time scale.
	JulianDay float64
	DaysJ2000 float64 // days since J2000.0
	T         float64 // Julian centuries since J2000.0
	T2        float64
	T3        float64

	// Ecliptic position.
	Longitude         float64 // apparent ecliptic longitude, rad
	Distance          float64 // AU; populated only with Options.ComputeDistance
	Obliquity         float64 // true obliquity of the ecliptic, rad
	NutationLongitude float64 // rad

	// Equatorial position (uncorrected).
	RightAscension float64 // rad
	Declination    float64 // rad

	// Apparent Greenwich sidereal time, rad. Never degree-converted.
	SiderealTime float64

	// Horizontal position.
	Azimuth          float64
	Altitude         float64 // geometric
	AltitudeParallax float64 // parallax-corrected
	AltitudeRefract  float64 // parallax- and refraction-corrected

	// Refraction-corrected equatorial position, populated only with
	// Options.ComputeRefrEquatorial.
	HourAngleRefract   float64
	DeclinationRefract float64

	// Warnings collected while computing; empty for well-conditioned inputs.
	Warnings []Warning
}

// Compute runs the full pipeline for one instant and observer.
// It fails with ErrInvalidInput before any stage runs if the inputs are
// outside the valid domain; numeric edge cases inside the domain are reported
// as warnings on the result instead.
func Compute(instant Instant, obs Observer, opts Options) (Position, error) {
	lat, lon := obs.Latitude, obs.Longitude
	if opts.UseDegrees {
		lat /= radToDeg
		lon /= radToDeg
	}
	if err := validateObserver(lat, lon); err != nil {
		return Position{}, err
	}

	ts, err := NewTimescale(instant)
	if err != nil {
		return Position{}, err
	}

	ecl := SolveEcliptic(ts)
	eq := EclipticToEquatorial(ecl)
	agst := SiderealTime(ts, ecl)
	hz := EquatorialToHorizontal(lat, lon, eq, agst)

	pos := Position{
		JulianDay:         ts.JulianDay,
		DaysJ2000:         ts.DaysJ2000,
		T:                 ts.T,
		T2:                ts.T2,
		T3:                ts.T3,
		Longitude:         ecl.Longitude,
		Obliquity:         ecl.Obliquity,
		NutationLongitude: ecl.NutationLongitude,
		RightAscension:    eq.RightAscension,
		Declination:       eq.Declination,
		SiderealTime:      agst,
		Azimuth:           hz.Azimuth,
		Altitude:          hz.Altitude,
	}
	if opts.ComputeDistance {
		pos.Distance = ecl.Distance
	}

	// Atmospheric corrections, altitude only, parallax first.
	altPar := hz.Altitude - parallaxCorrection(ecl.Distance, hz.Altitude)
	pos.AltitudeParallax = altPar

	refr, ok := refractionCorrection(altPar, obs.Atmosphere)
	if !ok {
		pos.Warnings = append(pos.Warnings, WarnRefraction)
	}
	pos.AltitudeRefract = altPar + refr

	if opts.ComputeRefrEquatorial {
		pos.HourAngleRefract, pos.DeclinationRefract = HorizontalToEquatorial(lat, Horizontal{
			Azimuth:  pos.Azimuth,
			Altitude: pos.AltitudeRefract,
		})
	}

	// Convention normalization: azimuth/hour-angle zero point, then units.
	if opts.UseNorthEqualsZero {
		pos.Azimuth = norm2Pi(pos.Azimuth + math.Pi)
		if opts.ComputeRefrEquatorial {
			pos.HourAngleRefract = norm2Pi(pos.HourAngleRefract + math.Pi)
		}
	}
	if opts.UseDegrees {
		pos.Azimuth *= radToDeg
		pos.Altitude *= radToDeg
		pos.AltitudeParallax *= radToDeg
		pos.AltitudeRefract *= radToDeg
		if opts.ComputeRefrEquatorial {
			pos.HourAngleRefract *= radToDeg
			pos.DeclinationRefract *= radToDeg
		}
	}

	if !finiteOutputs(&pos) {
		pos.Warnings = append(pos.Warnings, WarnNumericalDomain)
	}
	return pos, nil
}

func validateObserver(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -math.Pi/2 || lat > math.Pi/2 {
		return fmt.Errorf("%w: latitude %g rad out of range", ErrInvalidInput, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("%w: longitude is not finite", ErrInvalidInput)
	}
	return nil
}

func finiteOutputs(pos *Position) bool {
	for _, v := range []float64{
		pos.Longitude, pos.RightAscension, pos.Declination,
		pos.Azimuth, pos.Altitude, pos.AltitudeParallax, pos.AltitudeRefract,
		pos.HourAngleRefract, pos.DeclinationRefract,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

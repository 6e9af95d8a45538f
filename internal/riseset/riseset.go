// Package riseset computes rise, transit and set times of the Sun for an
// observer, by iterating the position pipeline until the event altitude
// converges.
package riseset

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/litescript/ls-sunpos/internal/ephem"
)

// StandardAltitude is the event altitude for actual sunrise and sunset:
// -50 arcminutes, accounting for mean refraction and the solar radius.
const StandardAltitude = -0.8333 / radToDeg

const (
	radToDeg = 57.2957795130823208768
	radToHr  = 3.81971863420548805845
	twoPi    = 2 * math.Pi

	// convergence threshold for event times; 1e-5 rad is about 0.14 s
	accuracy = 1.0e-5
	maxIter  = 30

	solarToSidereal = 1.002737909350795
)

// Result holds the Sun's rise, transit and set circumstances for one civil
// day (UT). Times are hours since midnight UT; absent events are NaN.
type Result struct {
	RiseTime    float64 // hours UT, NaN if the Sun never crosses the altitude
	TransitTime float64 // hours UT
	SetTime     float64 // hours UT, NaN if the Sun never crosses the altitude

	RiseAzimuth     float64 // rad (or deg with Options.UseDegrees)
	TransitAltitude float64
	SetAzimuth      float64

	// AlwaysAbove/AlwaysBelow flag days on which the Sun stays above or
	// below the event altitude; only the transit values are meaningful then.
	AlwaysAbove bool
	AlwaysBelow bool
}

// Compute determines the Sun's rise, transit and set for the civil day of the
// given instant. eventAlt is the altitude defining rise and set (radians,
// whatever Options.UseDegrees says); pass 0 to use StandardAltitude. With
// |eventAlt| > pi/2 only the transit is computed.
//
// Follows the classical iteration: start from the midnight position, convert
// the time offsets to sidereal angles, and correct each event until the hour
// angle (transit) or altitude (rise/set) converges.
func Compute(instant ephem.Instant, obs ephem.Observer, eventAlt float64, opts ephem.Options) (Result, error) {
	lat, lon := obs.Latitude, obs.Longitude
	if opts.UseDegrees {
		lat /= radToDeg
		lon /= radToDeg
	}
	loc := ephem.Observer{Longitude: lon, Latitude: lat, Atmosphere: obs.Atmosphere}

	rsa := StandardAltitude
	if math.Abs(eventAlt) > 1e-9 {
		rsa = eventAlt
	}

	// Midnight UT of the requested day.
	day := ephem.Instant{Year: instant.Year, Month: instant.Month, Day: instant.Day}
	pos, err := ephem.Compute(day, loc, ephem.Options{})
	if err != nil {
		return Result{}, err
	}
	agst0 := pos.SiderealTime

	res := Result{RiseTime: math.NaN(), SetTime: math.NaN()}

	evMax := 3 // transit, rise, set
	var h0 float64
	cosH0 := (math.Sin(rsa) - math.Sin(lat)*math.Sin(pos.Declination)) /
		(math.Cos(lat) * math.Cos(pos.Declination))
	if math.Abs(cosH0) > 1.0 || math.Abs(rsa) > math.Pi/2 {
		evMax = 1 // transit only
		res.AlwaysBelow = cosH0 > 1.0
		res.AlwaysAbove = cosH0 < -1.0
	} else {
		h0 = math.Mod(math.Acos(cosH0), math.Pi)
	}

	// Initial guesses as angles: the transit is where the hour angle
	// vanishes, rise and set sit half a diurnal arc to either side.
	tmRad := make([]float64, evMax)
	azalt := make([]float64, evMax)
	tmRad[0] = norm2Pi(pos.RightAscension - lon - agst0)
	if evMax > 1 {
		tmRad[1] = norm2Pi(tmRad[0] - h0)
		tmRad[2] = norm2Pi(tmRad[0] + h0)
	}

	for evi := 0; evi < evMax; evi++ {
		iter := 0
		dTmRad := math.Inf(1)
		var ha, alt float64

		for math.Abs(dTmRad) > accuracy {
			th0 := agst0 + solarToSidereal*tmRad[evi] // sidereal time at the trial instant

			trial := instantAtOffset(day, tmRad[evi]*radToHr)
			pos, err = ephem.Compute(trial, loc, ephem.Options{})
			if err != nil {
				return Result{}, err
			}

			ha = revPi(th0 + lon - pos.RightAscension)
			alt = math.Asin(math.Sin(lat)*math.Sin(pos.Declination) +
				math.Cos(lat)*math.Cos(pos.Declination)*math.Cos(ha))

			if evi == 0 {
				dTmRad = -revPi(ha)
			} else {
				dTmRad = (alt - rsa) / (math.Cos(pos.Declination) * math.Cos(lat) * math.Sin(ha))
			}
			tmRad[evi] += dTmRad

			iter++
			if iter > maxIter {
				break
			}
		}

		if iter > maxIter {
			log.Warn().
				Int("event", evi).
				Float64("eventAltitude", rsa).
				Msg("rise/set iteration failed to converge")
			tmRad[evi] = math.NaN()
			azalt[evi] = math.NaN()
			continue
		}

		if evi == 0 {
			azalt[evi] = alt // transit altitude
		} else {
			azalt[evi] = math.Atan2(math.Sin(ha),
				math.Cos(ha)*math.Sin(lat)-math.Tan(pos.Declination)*math.Cos(lat))
		}

		// An event folding to a negative angle belongs to the previous day.
		if tmRad[evi] < 0 && math.Abs(eventAlt) < 1e-9 {
			tmRad[evi] = math.NaN()
			azalt[evi] = math.NaN()
		}
	}

	if opts.UseNorthEqualsZero && evMax > 1 {
		azalt[1] = norm2Pi(azalt[1] + math.Pi)
		azalt[2] = norm2Pi(azalt[2] + math.Pi)
	}
	if opts.UseDegrees {
		for i := range azalt {
			azalt[i] *= radToDeg
		}
	}

	res.TransitTime = tmRad[0] * radToHr
	res.TransitAltitude = azalt[0]
	if evMax > 1 {
		res.RiseTime = tmRad[1] * radToHr
		res.SetTime = tmRad[2] * radToHr
		res.RiseAzimuth = azalt[1]
		res.SetAzimuth = azalt[2]
	}
	return res, nil
}

// instantAtOffset returns the instant a number of hours past the midnight of
// the given day. The offset may be negative or exceed 24h while the
// iteration overshoots; the calendar fields absorb the overflow.
func instantAtOffset(day ephem.Instant, hours float64) ephem.Instant {
	midnight := time.Date(day.Year, time.Month(day.Month), day.Day, 0, 0, 0, 0, time.UTC)
	t := midnight.Add(time.Duration(hours * float64(time.Hour)))
	return ephem.Instant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// revPi folds an angle into (-pi, +pi].
func revPi(angle float64) float64 {
	return norm2Pi(angle+math.Pi) - math.Pi
}

func norm2Pi(angle float64) float64 {
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

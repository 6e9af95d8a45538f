// Package trace samples the Sun's path across the sky over a civil day.
package trace

import (
	"math"
	"time"

	"github.com/litescript/ls-sunpos/internal/ephem"
)

// Sample is the Sun's horizontal position at one instant.
type Sample struct {
	Time     time.Time
	Azimuth  float64 // deg, north-zero
	Altitude float64 // deg, refraction-corrected
}

// DayTrace holds samples covering one civil day (UT) at a fixed step.
type DayTrace struct {
	Start   time.Time
	End     time.Time
	Step    time.Duration
	Samples []Sample
}

// DefaultStep is the sample spacing used when none is given.
const DefaultStep = 10 * time.Minute

// ComputeDay samples the Sun's position from midnight to midnight UT for the
// civil day containing t. The observer is in geographic degrees.
func ComputeDay(t time.Time, obs ephem.Observer, step time.Duration) (DayTrace, error) {
	if step <= 0 {
		step = DefaultStep
	}
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	opts := ephem.Options{UseDegrees: true, UseNorthEqualsZero: true}

	tr := DayTrace{Start: start, End: end, Step: step}
	for ts := start; !ts.After(end); ts = ts.Add(step) {
		pos, err := ephem.Compute(instantOf(ts), obs, opts)
		if err != nil {
			return DayTrace{}, err
		}
		tr.Samples = append(tr.Samples, Sample{
			Time:     ts,
			Azimuth:  pos.Azimuth,
			Altitude: pos.AltitudeRefract,
		})
	}
	return tr, nil
}

// Closest returns the sample nearest to the given time, or nil when the trace
// is empty.
func (tr *DayTrace) Closest(t time.Time) *Sample {
	if len(tr.Samples) == 0 {
		return nil
	}
	var closest *Sample
	minDelta := time.Duration(math.MaxInt64)
	for i := range tr.Samples {
		delta := tr.Samples[i].Time.Sub(t)
		if delta < 0 {
			delta = -delta
		}
		if delta < minDelta {
			minDelta = delta
			closest = &tr.Samples[i]
		}
	}
	return closest
}

// MaxAltitude returns the highest sampled altitude and its time.
func (tr *DayTrace) MaxAltitude() (float64, time.Time) {
	best := math.Inf(-1)
	var at time.Time
	for _, s := range tr.Samples {
		if s.Altitude > best {
			best = s.Altitude
			at = s.Time
		}
	}
	return best, at
}

func instantOf(t time.Time) ephem.Instant {
	return ephem.Instant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

package ui

import (
	"fmt"
	"time"

	"github.com/litescript/ls-sunpos/internal/config"
	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/riseset"
	"github.com/litescript/ls-sunpos/internal/state"
	"github.com/litescript/ls-sunpos/internal/trace"
)

// uiOptions are the conventions all views render in: degrees, azimuth
// counted from north, distance shown.
var uiOptions = ephem.Options{
	UseDegrees:         true,
	UseNorthEqualsZero: true,
	ComputeDistance:    true,
}

// ComputeSun computes the full sun state for a site at the given time:
// instantaneous position, the day's rise/set events, and the day path.
func ComputeSun(site config.Site, now time.Time) (*state.SunData, error) {
	now = now.UTC()
	in := instantOf(now)
	obs := site.Observer()

	pos, err := ephem.Compute(in, obs, uiOptions)
	if err != nil {
		return nil, fmt.Errorf("position for %s: %w", site.Name, err)
	}

	events, err := riseset.Compute(in, obs, riseset.StandardAltitude, uiOptions)
	if err != nil {
		return nil, fmt.Errorf("rise/set for %s: %w", site.Name, err)
	}

	day, err := trace.ComputeDay(now, obs, trace.DefaultStep)
	if err != nil {
		return nil, fmt.Errorf("day path for %s: %w", site.Name, err)
	}

	return &state.SunData{
		Timestamp: now,
		Site:      site.Name,
		Position:  pos,
		Events:    events,
		Day:       day,
	}, nil
}

func instantOf(t time.Time) ephem.Instant {
	t = t.UTC()
	return ephem.Instant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

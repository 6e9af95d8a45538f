package ephem

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"
)

// The reference file holds positions for 60 random instants between 2014 and
// 2113, computed by the reference implementation for the Arnhem site with
// north-zero azimuths and degree output.
const refTolDeg = 1e-6

type refRecord struct {
	instant Instant
	jd      float64
	eclLon  float64 // deg
	ra      float64 // deg
	dec     float64 // deg
	az      float64 // deg, north-zero
	alt     float64 // deg, parallax-corrected
	altRefr float64 // deg
	ha      float64 // deg, north-zero
	decRefr float64 // deg
}

func loadReference(t *testing.T) []refRecord {
	t.Helper()

	f, err := os.Open("testdata/positions.dat")
	if err != nil {
		t.Fatalf("open reference data: %v", err)
	}
	defer f.Close()

	var recs []refRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var r refRecord
		n, err := fmt.Sscan(line,
			&r.instant.Year, &r.instant.Month, &r.instant.Day,
			&r.instant.Hour, &r.instant.Minute, &r.instant.Second,
			&r.jd, &r.eclLon, &r.ra, &r.dec,
			&r.az, &r.alt, &r.altRefr, &r.ha, &r.decRefr)
		if err != nil || n != 15 {
			t.Fatalf("parse reference line %q: %v (%d fields)", line, err, n)
		}
		recs = append(recs, r)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read reference data: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("no reference records loaded")
	}
	return recs
}

func TestComputeMatchesReference(t *testing.T) {
	obs := Observer{
		Longitude: 5.950270,
		Latitude:  51.987380,
	}
	opts := Options{
		UseDegrees:            true,
		UseNorthEqualsZero:    true,
		ComputeRefrEquatorial: true,
		ComputeDistance:       true,
	}

	for _, rec := range loadReference(t) {
		pos, err := Compute(rec.instant, obs, opts)
		if err != nil {
			t.Fatalf("Compute(%+v): %v", rec.instant, err)
		}

		if math.Abs(pos.JulianDay-rec.jd) > 1e-8 {
			t.Errorf("%+v: JulianDay = %.11f, want %.11f", rec.instant, pos.JulianDay, rec.jd)
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"ecliptic longitude", pos.Longitude * radToDeg, rec.eclLon},
			{"right ascension", pos.RightAscension * radToDeg, rec.ra},
			{"declination", pos.Declination * radToDeg, rec.dec},
			{"azimuth", pos.Azimuth, rec.az},
			{"altitude (parallax)", pos.AltitudeParallax, rec.alt},
			{"altitude (refracted)", pos.AltitudeRefract, rec.altRefr},
			{"hour angle", pos.HourAngleRefract, rec.ha},
			{"declination (refracted)", pos.DeclinationRefract, rec.decRefr},
		}
		for _, c := range checks {
			if math.Abs(c.got-c.want) > refTolDeg {
				t.Errorf("%+v: %s = %.9f, want %.9f (delta %.3g)",
					rec.instant, c.name, c.got, c.want, c.got-c.want)
			}
		}

		if pos.Distance < 0.98 || pos.Distance > 1.02 {
			t.Errorf("%+v: distance = %f AU, want about 1", rec.instant, pos.Distance)
		}
	}
}

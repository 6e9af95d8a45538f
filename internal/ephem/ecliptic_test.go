package ephem

import (
	"math"
	"testing"
)

func solve(t *testing.T, in Instant) Ecliptic {
	t.Helper()
	ts, err := NewTimescale(in)
	if err != nil {
		t.Fatalf("NewTimescale(%+v): %v", in, err)
	}
	return SolveEcliptic(ts)
}

func TestSolveEclipticSeasons(t *testing.T) {
	// Coarse sanity bounds on the longitude series: the apparent longitude
	// must sit near the cardinal points at solstices and equinoxes.
	tests := []struct {
		name    string
		instant Instant
		wantDeg float64
	}{
		{"June solstice 2014", Instant{2014, 6, 21, 11, 41, 46}, 90},
		{"December solstice 2014", Instant{2014, 12, 21, 23, 3, 0}, 270},
		{"March equinox 2020", Instant{2020, 3, 20, 3, 50, 0}, 360},
		{"September equinox 2020", Instant{2020, 9, 22, 13, 31, 0}, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecl := solve(t, tt.instant)
			lonDeg := ecl.Longitude * radToDeg
			diff := math.Abs(lonDeg - tt.wantDeg)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1 {
				t.Errorf("longitude = %.4f deg, want within 1 deg of %g", lonDeg, tt.wantDeg)
			}
		})
	}
}

func TestSolveEclipticDistance(t *testing.T) {
	// Perihelion in early January, aphelion in early July.
	peri := solve(t, Instant{2020, 1, 5, 8, 0, 0})
	aph := solve(t, Instant{2020, 7, 4, 12, 0, 0})

	if peri.Distance < 0.9830 || peri.Distance > 0.9840 {
		t.Errorf("perihelion distance = %.6f AU, want about 0.9833", peri.Distance)
	}
	if aph.Distance < 1.0160 || aph.Distance > 1.0172 {
		t.Errorf("aphelion distance = %.6f AU, want about 1.0167", aph.Distance)
	}
	if aph.Distance <= peri.Distance {
		t.Errorf("aphelion %.6f AU not farther than perihelion %.6f AU", aph.Distance, peri.Distance)
	}
}

func TestSolveEclipticObliquity(t *testing.T) {
	ecl := solve(t, Instant{2014, 6, 21, 12, 0, 0})
	oblDeg := ecl.Obliquity * radToDeg
	if oblDeg < 23.42 || oblDeg > 23.45 {
		t.Errorf("obliquity = %.5f deg, want about 23.437", oblDeg)
	}
}

func TestSolveEclipticNutationBounds(t *testing.T) {
	// Nutation in longitude stays within about +-17 arcseconds.
	limit := 20.0 / 3600.0 / radToDeg
	for year := 2014; year <= 2113; year += 7 {
		ecl := solve(t, Instant{year, 3, 15, 6, 30, 0})
		if math.Abs(ecl.NutationLongitude) > limit {
			t.Errorf("year %d: nutation = %g rad, outside physical bounds", year, ecl.NutationLongitude)
		}
	}
}

func TestSolveEclipticLongitudeRange(t *testing.T) {
	for month := 1; month <= 12; month++ {
		ecl := solve(t, Instant{2030, month, 15, 9, 0, 0})
		if ecl.Longitude < 0 || ecl.Longitude >= twoPi {
			t.Errorf("month %d: longitude %g rad outside [0, 2pi)", month, ecl.Longitude)
		}
	}
}

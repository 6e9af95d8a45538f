package trace

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-sunpos/internal/ephem"
)

var arnhem = ephem.Observer{
	Longitude: 5.950270,
	Latitude:  51.987380,
}

func TestComputeDay(t *testing.T) {
	day := time.Date(2014, 6, 21, 15, 30, 0, 0, time.UTC)
	tr, err := ComputeDay(day, arnhem, time.Hour)
	if err != nil {
		t.Fatalf("ComputeDay: %v", err)
	}

	if len(tr.Samples) != 25 { // 00:00 through 24:00 inclusive
		t.Fatalf("got %d samples, want 25", len(tr.Samples))
	}
	for i, s := range tr.Samples {
		if i > 0 && !s.Time.After(tr.Samples[i-1].Time) {
			t.Errorf("sample %d: time not increasing", i)
		}
		if s.Azimuth < 0 || s.Azimuth >= 360 {
			t.Errorf("sample %d: azimuth %.2f outside [0, 360)", i, s.Azimuth)
		}
		if s.Altitude < -90 || s.Altitude > 90 {
			t.Errorf("sample %d: altitude %.2f outside [-90, 90]", i, s.Altitude)
		}
	}

	// Solstice maximum near local noon, about 61 degrees at Arnhem.
	maxAlt, at := tr.MaxAltitude()
	if maxAlt < 59 || maxAlt > 63 {
		t.Errorf("max altitude = %.2f deg, want about 61", maxAlt)
	}
	if at.Hour() < 11 || at.Hour() > 13 {
		t.Errorf("max altitude at %s, want near local noon", at.Format("15:04"))
	}
}

func TestComputeDayDefaultStep(t *testing.T) {
	tr, err := ComputeDay(time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), arnhem, 0)
	if err != nil {
		t.Fatalf("ComputeDay: %v", err)
	}
	if tr.Step != DefaultStep {
		t.Errorf("step = %v, want %v", tr.Step, DefaultStep)
	}
	if want := 24*6 + 1; len(tr.Samples) != want {
		t.Errorf("got %d samples, want %d", len(tr.Samples), want)
	}
}

func TestClosest(t *testing.T) {
	day := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	tr, err := ComputeDay(day, arnhem, time.Hour)
	if err != nil {
		t.Fatalf("ComputeDay: %v", err)
	}

	s := tr.Closest(day.Add(10*time.Hour + 20*time.Minute))
	if s == nil {
		t.Fatal("Closest returned nil for non-empty trace")
	}
	if s.Time.Hour() != 10 {
		t.Errorf("closest sample at %s, want 10:00", s.Time.Format("15:04"))
	}

	empty := &DayTrace{}
	if empty.Closest(day) != nil {
		t.Error("Closest on empty trace: want nil")
	}
}

func TestDayAndNightAltitudes(t *testing.T) {
	tr, err := ComputeDay(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), arnhem, 30*time.Minute)
	if err != nil {
		t.Fatalf("ComputeDay: %v", err)
	}
	noon := tr.Closest(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC))
	midnight := tr.Samples[0]
	if noon.Altitude <= 0 {
		t.Errorf("equinox noon altitude = %.2f, want above horizon", noon.Altitude)
	}
	if midnight.Altitude >= 0 {
		t.Errorf("midnight altitude = %.2f, want below horizon", midnight.Altitude)
	}
	if math.Abs(noon.Altitude-(90-51.987380)) > 1.5 {
		t.Errorf("equinox noon altitude = %.2f, want about %.2f", noon.Altitude, 90-51.987380)
	}
}

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-sunpos/internal/config"
	"github.com/litescript/ls-sunpos/internal/state"
	"github.com/litescript/ls-sunpos/internal/trace"
)

func testSunData(t *testing.T) *state.SunData {
	t.Helper()
	site := config.Site{Name: "arnhem", Latitude: 51.987380, Longitude: 5.950270}
	data, err := ComputeSun(site, time.Date(2014, 6, 21, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ComputeSun: %v", err)
	}
	return data
}

func TestComputeSun(t *testing.T) {
	data := testSunData(t)

	if data.Site != "arnhem" {
		t.Errorf("site = %q", data.Site)
	}
	// Midsummer noon at 52N: high sun, roughly south
	if data.Position.AltitudeRefract < 55 || data.Position.AltitudeRefract > 65 {
		t.Errorf("altitude = %f, want ~61", data.Position.AltitudeRefract)
	}
	if data.Position.Azimuth < 150 || data.Position.Azimuth > 210 {
		t.Errorf("azimuth = %f, want near south", data.Position.Azimuth)
	}
	if data.Events.AlwaysAbove || data.Events.AlwaysBelow {
		t.Error("Arnhem midsummer should have a sunrise and sunset")
	}
	if len(data.Day.Samples) == 0 {
		t.Fatal("day trace empty")
	}
}

func TestResampleAltitude(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []trace.Sample{
		{Time: base, Altitude: -10},
		{Time: base.Add(6 * time.Hour), Altitude: 0},
		{Time: base.Add(12 * time.Hour), Altitude: 40},
		{Time: base.Add(18 * time.Hour), Altitude: 0},
		{Time: base.Add(24 * time.Hour), Altitude: -10},
	}

	out := resampleAltitude(samples, 16)
	if len(out) != 16 {
		t.Fatalf("resampled length = %d, want 16", len(out))
	}
	if out[0] != -10 || out[15] != -10 {
		t.Errorf("endpoints = %v, %v, want -10", out[0], out[15])
	}

	// Peak should land near the middle
	maxIdx := 0
	for i, v := range out {
		if v > out[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx < 6 || maxIdx > 9 {
		t.Errorf("peak at index %d, want near middle", maxIdx)
	}
}

func TestResampleAltitude_Degenerate(t *testing.T) {
	if got := resampleAltitude(nil, 10); got != nil {
		t.Errorf("nil samples should yield nil, got %v", got)
	}

	single := []trace.Sample{{Time: time.Now(), Altitude: 12}}
	out := resampleAltitude(single, 4)
	if len(out) != 4 || out[2] != 12 {
		t.Errorf("single-sample resample = %v", out)
	}
}

func TestDayPathView(t *testing.T) {
	snap := state.Snapshot{Data: testSunData(t)}
	m := NewDayPathModel().SetSize(100, 40).UpdateData(snap)

	out := m.View()
	if !strings.Contains(out, "Day Path") || !strings.Contains(out, "2014-06-21") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "now:") {
		t.Errorf("current altitude marker missing:\n%s", out)
	}
	if !strings.Contains(out, "12:00") {
		t.Errorf("hourly table missing noon row:\n%s", out)
	}
}

func TestDayPathScrollClamps(t *testing.T) {
	m := NewDayPathModel().SetSize(100, 16).UpdateData(state.Snapshot{Data: testSunData(t)})

	// Scrolling far past the end must not panic and must still render
	for i := 0; i < 100; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	if out := m.View(); !strings.Contains(out, "Day Path") {
		t.Errorf("view broken after scrolling:\n%s", out)
	}
}

func TestInterpolateAltColor(t *testing.T) {
	r0, g0, b0 := interpolateAltColor(0)
	if [3]uint8{r0, g0, b0} != altColorLow {
		t.Errorf("t=0 color = %v, want %v", [3]uint8{r0, g0, b0}, altColorLow)
	}
	r1, g1, b1 := interpolateAltColor(1)
	if [3]uint8{r1, g1, b1} != altColorHigh {
		t.Errorf("t=1 color = %v, want %v", [3]uint8{r1, g1, b1}, altColorHigh)
	}
	// Out-of-range inputs clamp
	rl, gl, bl := interpolateAltColor(-3)
	if [3]uint8{rl, gl, bl} != altColorLow {
		t.Errorf("t<0 should clamp to low color")
	}
}

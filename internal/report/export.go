// Package report renders computed solar positions as JSON snapshots,
// fixed-width regression records, and human-readable tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/trace"
)

// PositionRecord is a JSON-friendly view of one computed position.
// Angles are degrees; the input convention options decide what the azimuth
// and hour angle are referenced to.
type PositionRecord struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`

	JulianDay float64 `json:"julian_day"`

	EclipticLongitude float64 `json:"ecliptic_longitude"`
	RightAscension    float64 `json:"right_ascension"`
	Declination       float64 `json:"declination"`

	Azimuth          float64 `json:"azimuth"`
	Altitude         float64 `json:"altitude"`
	AltitudeRefract  float64 `json:"altitude_refracted"`
	HourAngle        float64 `json:"hour_angle,omitempty"`
	DeclinationRefr  float64 `json:"declination_refracted,omitempty"`
	Distance         float64 `json:"distance_au,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

const radToDeg = 57.2957795130823208768

// NewRecord builds a record from a position computed with
// Options.UseDegrees set. Intermediate radian fields are converted here so
// the record is uniformly in degrees.
func NewRecord(in ephem.Instant, pos ephem.Position) PositionRecord {
	rec := PositionRecord{
		Year:   in.Year,
		Month:  in.Month,
		Day:    in.Day,
		Hour:   in.Hour,
		Minute: in.Minute,
		Second: in.Second,

		JulianDay: pos.JulianDay,

		EclipticLongitude: pos.Longitude * radToDeg,
		RightAscension:    pos.RightAscension * radToDeg,
		Declination:       pos.Declination * radToDeg,

		Azimuth:         pos.Azimuth,
		Altitude:        pos.AltitudeParallax,
		AltitudeRefract: pos.AltitudeRefract,
		HourAngle:       pos.HourAngleRefract,
		DeclinationRefr: pos.DeclinationRefract,
		Distance:        pos.Distance,
	}
	for _, w := range pos.Warnings {
		rec.Warnings = append(rec.Warnings, w.String())
	}
	return rec
}

// SnapshotExport is the JSON document the batch and now commands emit.
type SnapshotExport struct {
	Site        string           `json:"site,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
	Records     []PositionRecord `json:"records"`
}

// WriteJSON writes the snapshot as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteFixedWidth writes one fixed-width text line per record, matching the
// regression-comparison layout: date, time, Julian Day, then the angular
// fields in degrees.
func WriteFixedWidth(w io.Writer, records []PositionRecord) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%4d %2d %2d   %2d %2d %9.6f  %20.11f   %10.6f %10.6f   %10.6f %10.6f %10.6f   %10.6f %10.6f\n",
			r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second,
			r.JulianDay,
			r.RightAscension, r.Declination,
			r.Azimuth, r.Altitude, r.AltitudeRefract,
			r.HourAngle, r.DeclinationRefr)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteDayTable writes a daily trace as a text table with one row per sample.
func WriteDayTable(w io.Writer, site string, tr trace.DayTrace) {
	fmt.Fprintf(w, "Sun path for %s on %s (UT, azimuth N=0)\n",
		site, tr.Start.Format("2006-01-02"))
	fmt.Fprintln(w, strings.Repeat("─", 44))
	fmt.Fprintf(w, "%-8s %12s %12s\n", "Time", "Azimuth", "Altitude")
	fmt.Fprintln(w, strings.Repeat("─", 44))

	for _, s := range tr.Samples {
		marker := " "
		if s.Altitude > 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%-8s %11.2f° %11.2f° %s\n",
			s.Time.Format("15:04"), s.Azimuth, s.Altitude, marker)
	}

	maxAlt, at := tr.MaxAltitude()
	fmt.Fprintf(w, "\nHighest: %.2f° at %s UT\n", maxAlt, at.Format("15:04"))
}

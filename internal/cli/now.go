package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/report"
)

// Flags for the `now` command line command, for `go-flags` to parse command
// line args into.
type NowCommand struct {
	Site string `short:"s" long:"site" description:"site name from the configuration" value-name:"<name>"`
	At   string `short:"t" long:"at" description:"compute for this UT instant instead of now" value-name:"<TIME>"`
	JSON bool   `long:"json" description:"emit a JSON snapshot instead of text"`

	NorthZero  bool `long:"north-zero" description:"count azimuth from north (overrides configuration)"`
	Equatorial bool `long:"equatorial" description:"include refraction-corrected hour angle and declination"`
	Distance   bool `long:"distance" description:"include the geocentric distance"`
}

// Executes the now command.
// (This gets called by `go-flags` when `now` is provided on the command line)
func (command *NowCommand) Execute(args []string) error {
	cfg, site, err := loadSite(command.Site)
	if err != nil {
		return err
	}

	when, err := parseWhen(command.At)
	if err != nil {
		return err
	}

	// Reports are always rendered in degrees regardless of configured output.
	opts := cfg.Output.Options()
	opts.UseDegrees = true
	if command.NorthZero {
		opts.UseNorthEqualsZero = true
	}
	if command.Equatorial {
		opts.ComputeRefrEquatorial = true
	}
	if command.Distance {
		opts.ComputeDistance = true
	}

	in := instantOf(when)
	pos, err := ephem.Compute(in, site.Observer(), opts)
	if err != nil {
		return fmt.Errorf("compute position: %w", err)
	}

	rec := report.NewRecord(in, pos)

	if command.JSON {
		export := report.SnapshotExport{
			Site:        site.Name,
			GeneratedAt: time.Now().UTC(),
			Records:     []report.PositionRecord{rec},
		}
		return export.WriteJSON(os.Stdout)
	}

	fmt.Printf("Sun at %s for %s (%.4f°N %.4f°E)\n",
		when.Format("2006-01-02 15:04:05 UT"), site.Name, site.Latitude, site.Longitude)
	fmt.Printf("  Azimuth      %9.3f°\n", rec.Azimuth)
	fmt.Printf("  Altitude     %9.3f°  (refracted %.3f°)\n", rec.Altitude, rec.AltitudeRefract)
	fmt.Printf("  Right asc.   %9.3f°\n", rec.RightAscension)
	fmt.Printf("  Declination  %9.3f°\n", rec.Declination)
	if opts.ComputeRefrEquatorial {
		fmt.Printf("  Hour angle   %9.3f°  (refracted)\n", rec.HourAngle)
		fmt.Printf("  Decl. refr.  %9.3f°\n", rec.DeclinationRefr)
	}
	if opts.ComputeDistance {
		fmt.Printf("  Distance     %11.6f AU\n", rec.Distance)
	}
	fmt.Printf("  Julian Day   %14.5f\n", rec.JulianDay)
	for _, w := range rec.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	return nil
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

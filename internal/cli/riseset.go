package cli

import (
	"fmt"
	"math"

	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/riseset"
)

const degToRad = math.Pi / 180

// Flags for the `riseset` command line command, for `go-flags` to parse
// command line args into.
type RisesetCommand struct {
	Site     string  `short:"s" long:"site" description:"site name from the configuration" value-name:"<name>"`
	Date     string  `short:"d" long:"date" description:"UT date (default today)" value-name:"<YYYY-MM-DD>"`
	Altitude float64 `short:"a" long:"altitude" description:"event altitude in degrees (default -0.8333, the upper-limb horizon)" value-name:"<DEG>"`
	Civil    bool    `long:"civil" description:"civil twilight (-6°) instead of the horizon"`
}

// Executes the riseset command.
// (This gets called by `go-flags` when `riseset` is provided on the command
// line)
func (command *RisesetCommand) Execute(args []string) error {
	_, site, err := loadSite(command.Site)
	if err != nil {
		return err
	}

	day, err := parseWhen(command.Date)
	if err != nil {
		return err
	}

	eventAlt := riseset.StandardAltitude
	if command.Civil {
		eventAlt = -6 * degToRad
	}
	if command.Altitude != 0 {
		eventAlt = command.Altitude * degToRad
	}

	in := instantOf(day)
	in.Hour, in.Minute, in.Second = 0, 0, 0

	opts := ephem.Options{UseDegrees: true, UseNorthEqualsZero: true}
	res, err := riseset.Compute(in, site.Observer(), eventAlt, opts)
	if err != nil {
		return fmt.Errorf("compute rise/set: %w", err)
	}

	fmt.Printf("Sun events for %s on %04d-%02d-%02d (UT)\n", site.Name, in.Year, in.Month, in.Day)
	switch {
	case res.AlwaysAbove:
		fmt.Println("  sun never reaches the event altitude going down: midnight sun")
	case res.AlwaysBelow:
		fmt.Println("  sun never reaches the event altitude going up: polar night")
	default:
		fmt.Printf("  rise     %s   azimuth  %7.2f°\n", formatHours(res.RiseTime), res.RiseAzimuth)
		fmt.Printf("  transit  %s   altitude %7.2f°\n", formatHours(res.TransitTime), res.TransitAltitude)
		fmt.Printf("  set      %s   azimuth  %7.2f°\n", formatHours(res.SetTime), res.SetAzimuth)
	}
	return nil
}

// formatHours renders fractional hours UT as hh:mm:ss, or a dash for an
// event that does not occur on the requested day.
func formatHours(h float64) string {
	if math.IsNaN(h) {
		return "--:--:--"
	}
	total := int(h*3600 + 0.5)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

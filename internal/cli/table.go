package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/litescript/ls-sunpos/internal/report"
	"github.com/litescript/ls-sunpos/internal/trace"
)

// Flags for the `table` command line command, for `go-flags` to parse command
// line args into.
type TableCommand struct {
	Site string `short:"s" long:"site" description:"site name from the configuration" value-name:"<name>"`
	Date string `short:"d" long:"date" description:"UT date to tabulate (default today)" value-name:"<YYYY-MM-DD>"`
	Step string `long:"step" description:"sample interval (e.g. 10m, 1h)" default:"30m" value-name:"<DURATION>"`
}

// Executes the table command.
// (This gets called by `go-flags` when `table` is provided on the command line)
func (command *TableCommand) Execute(args []string) error {
	_, site, err := loadSite(command.Site)
	if err != nil {
		return err
	}

	day, err := parseWhen(command.Date)
	if err != nil {
		return err
	}

	step, err := time.ParseDuration(command.Step)
	if err != nil {
		return fmt.Errorf("bad step %q: %w", command.Step, err)
	}

	tr, err := trace.ComputeDay(day, site.Observer(), step)
	if err != nil {
		return fmt.Errorf("compute day table: %w", err)
	}

	report.WriteDayTable(os.Stdout, site.Name, tr)
	return nil
}

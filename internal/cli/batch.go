package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/litescript/ls-sunpos/internal/dataset"
	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/report"
)

// Flags for the `batch` command line command, for `go-flags` to parse command
// line args into.
type BatchCommand struct {
	Site   string `short:"s" long:"site" description:"site name from the configuration" value-name:"<name>"`
	Input  string `short:"i" long:"input" description:"date file to read (use - for stdin)" required:"true" value-name:"<FILE>"`
	Output string `short:"o" long:"output" description:"output file (default stdout)" value-name:"<FILE>"`
	JSON   bool   `long:"json" description:"emit a JSON snapshot instead of fixed-width records"`
}

// refCheckTol is the Julian Day deviation above which a reference mismatch
// is reported.
const refCheckTol = 1e-9

// Executes the batch command.
// (This gets called by `go-flags` when `batch` is provided on the command
// line)
func (command *BatchCommand) Execute(args []string) error {
	cfg, site, err := loadSite(command.Site)
	if err != nil {
		return err
	}

	in := os.Stdin
	if command.Input != "-" {
		f, err := os.Open(command.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	records, err := dataset.Read(in)
	if err != nil {
		return fmt.Errorf("read date file: %w", err)
	}

	opts := cfg.Output.Options()
	opts.UseDegrees = true
	opts.ComputeRefrEquatorial = true

	out := make([]report.PositionRecord, 0, len(records))
	for _, r := range records {
		pos, err := ephem.Compute(r.Instant, site.Observer(), opts)
		if err != nil {
			return fmt.Errorf("compute %04d-%02d-%02d %02d:%02d: %w",
				r.Instant.Year, r.Instant.Month, r.Instant.Day,
				r.Instant.Hour, r.Instant.Minute, err)
		}

		if r.RefJulianDay != 0 && math.Abs(pos.JulianDay-r.RefJulianDay) > refCheckTol {
			log.Warn().
				Float64("computed", pos.JulianDay).
				Float64("reference", r.RefJulianDay).
				Msg("julian day deviates from reference column")
		}

		out = append(out, report.NewRecord(r.Instant, pos))
	}

	var w io.Writer = os.Stdout
	if command.Output != "" {
		f, err := os.Create(command.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if command.JSON {
		export := report.SnapshotExport{
			Site:        site.Name,
			GeneratedAt: time.Now().UTC(),
			Records:     out,
		}
		return export.WriteJSON(w)
	}
	return report.WriteFixedWidth(w, out)
}

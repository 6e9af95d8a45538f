// Package dataset reads the fixed-column date files used to drive batch
// position runs: one instant per line as
//
//	year month day hour minute second [referenceJulianDay]
//
// Blank lines and lines starting with '#' are skipped.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-sunpos/internal/ephem"
)

// Record is one parsed input line.
type Record struct {
	Instant ephem.Instant

	// RefJulianDay carries the optional seventh column, used by regression
	// datasets to cross-check the time normalizer; 0 when absent.
	RefJulianDay float64
}

// Read parses all records from r. Each instant is validated; a malformed or
// out-of-domain line fails with its line number.
func Read(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rec Record
		n, err := fmt.Sscan(line,
			&rec.Instant.Year, &rec.Instant.Month, &rec.Instant.Day,
			&rec.Instant.Hour, &rec.Instant.Minute, &rec.Instant.Second,
			&rec.RefJulianDay)
		if n < 6 {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}
		if err != nil && n != 6 { // io.EOF after six fields means no reference column
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}

		if err := rec.Instant.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return records, nil
}

package dataset

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := `# regression dates
# site: Arnhem

2014  6 21  11 41 46.000000   2456829.98734
2020  3 20   3 50  0.5
2113 12 31  23  0  0.0   2492166.45833
`
	recs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	first := recs[0]
	if first.Instant.Year != 2014 || first.Instant.Month != 6 || first.Instant.Day != 21 {
		t.Errorf("first date = %+v", first.Instant)
	}
	if first.Instant.Second != 46.0 {
		t.Errorf("first second = %g, want 46", first.Instant.Second)
	}
	if first.RefJulianDay != 2456829.98734 {
		t.Errorf("first reference JD = %g", first.RefJulianDay)
	}

	// Second line has no reference column.
	if recs[1].RefJulianDay != 0 {
		t.Errorf("missing reference column parsed as %g, want 0", recs[1].RefJulianDay)
	}
	if recs[1].Instant.Second != 0.5 {
		t.Errorf("fractional seconds = %g, want 0.5", recs[1].Instant.Second)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "2014 6 21 11\n"},
		{"garbage", "not a date line\n"},
		{"invalid month", "2014 13 21 11 41 46.0\n"},
		{"pre-Gregorian", "1000 6 21 11 41 46.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Read(%q): expected error", tt.input)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	recs, err := Read(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

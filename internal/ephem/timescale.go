package ephem

import (
	"fmt"
	"math"
)

// Instant is a civil calendar date and time in Universal Time.
// Gregorian calendar only, so years before 1582 are rejected. Seconds may
// carry a fractional part.
type Instant struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// Validate checks that the instant lies in the domain the Julian Day formula
// and the solar series are valid for.
func (i Instant) Validate() error {
	if i.Year < gregorianMinYear {
		return fmt.Errorf("%w: year %d predates the Gregorian calendar", ErrInvalidInput, i.Year)
	}
	if i.Month < 1 || i.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidInput, i.Month)
	}
	if i.Day < 1 || i.Day > daysInMonth(i.Year, i.Month) {
		return fmt.Errorf("%w: day %d out of range for %d-%02d", ErrInvalidInput, i.Day, i.Year, i.Month)
	}
	if i.Hour < 0 || i.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidInput, i.Hour)
	}
	if i.Minute < 0 || i.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidInput, i.Minute)
	}
	if math.IsNaN(i.Second) || i.Second < 0 || i.Second >= 60 {
		return fmt.Errorf("%w: second %g out of range", ErrInvalidInput, i.Second)
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Timescale is the continuous time scale derived from an Instant: the Julian
// Day and the powers of time since J2000.0 that the series expansions consume.
type Timescale struct {
	JulianDay float64
	DaysJ2000 float64 // days since J2000.0
	T         float64 // Julian centuries since J2000.0
	T2        float64
	T3        float64
}

// NewTimescale validates the instant and derives its time-scale values.
func NewTimescale(i Instant) (Timescale, error) {
	if err := i.Validate(); err != nil {
		return Timescale{}, err
	}
	jd := julianDay(i)
	d := jd - epochJ2000
	t := d / daysPerCentury
	return Timescale{
		JulianDay: jd,
		DaysJ2000: d,
		T:         t,
		T2:        t * t,
		T3:        t * t * t,
	}, nil
}

// julianDay implements the standard Gregorian-calendar Julian Day formula.
// January and February are treated as months 13 and 14 of the previous year.
func julianDay(i Instant) float64 {
	year, month := i.Year, i.Month
	if month <= 2 {
		year--
		month += 12
	}

	century := int(math.Floor(float64(year) / 100.0))
	leap := 2 - century + int(math.Floor(float64(century)/4.0))

	day := float64(i.Day) + float64(i.Hour)/24.0 + float64(i.Minute)/1440.0 + i.Second/86400.0

	return math.Floor(365.250*float64(year+4716)) +
		math.Floor(30.60010*float64(month+1)) +
		day + float64(leap) - 1524.5
}

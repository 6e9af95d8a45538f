package ephem

import "errors"

// ErrInvalidInput is returned when an Instant or Observer lies outside the
// domain the solar theory is valid for. It is checked once at the entry
// point, before any pipeline stage runs.
var ErrInvalidInput = errors.New("invalid input")

// Warning marks a computation that entered a numerically suspect domain.
// Warnings are reported on the resulting Position instead of aborting the
// pipeline: the values are still the best the closed-form theory can give.
type Warning int

const (
	// WarnRefraction: the altitude is below the fitted domain of the
	// empirical refraction formula (at or below about -5.1 degrees), or the
	// formula produced a non-physical correction that was dropped.
	WarnRefraction Warning = iota + 1

	// WarnNumericalDomain: a non-finite value appeared in an output field,
	// typically from a pole-adjacent geometry.
	WarnNumericalDomain
)

func (w Warning) String() string {
	switch w {
	case WarnRefraction:
		return "refraction outside validity domain"
	case WarnNumericalDomain:
		return "non-finite value in output"
	default:
		return "unknown warning"
	}
}

package hebcal

import (
	"errors"
	"fmt"
)

// MaxYear is the largest supported Hebrew year. The chalakim totals for
// every year up to MaxYear (and the year after it, needed for year-length
// computation) sit comfortably inside int64.
const MaxYear = 999999

var (
	// ErrInvalidDate is returned when a month or day is outside the valid
	// range for its year. Out-of-range input is never clamped.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidYear is returned for Hebrew years before year 1.
	ErrInvalidYear = errors.New("invalid year")

	// ErrYearRange is returned when a year or day number falls outside
	// the supported range of 1..MaxYear.
	ErrYearRange = errors.New("year outside supported range")
)

// checkYear validates a Hebrew year number against the supported domain.
func checkYear(year int) error {
	if year < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if year > MaxYear {
		return fmt.Errorf("%w: %d", ErrYearRange, year)
	}
	return nil
}

// floorDiv divides rounding toward negative infinity. Go's division
// truncates toward zero, which is wrong for proleptic years before 1 CE.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

package hebcal

import "fmt"

// HebrewDate is a date in the Hebrew calendar. Year counts from creation
// (year 1); Month uses Nisan-first ordinals. Dates are plain values and
// are never mutated after construction.
type HebrewDate struct {
	Year  int   `json:"year"`
	Month Month `json:"month"`
	Day   int   `json:"day"`
}

// String renders the canonical display form, e.g. "5785-Tevet-01".
// In leap years month 12 renders as "Adar I".
func (d HebrewDate) String() string {
	name := d.Month.String()
	if d.Month == Adar && IsLeapYear(d.Year) {
		name = "Adar I"
	}
	return fmt.Sprintf("%d-%s-%02d", d.Year, name, d.Day)
}

// Validate checks the date against its year's month count and month
// lengths. A day past the end of a short month is an error, not a
// spill-over into the next month.
func (d HebrewDate) Validate() error {
	if err := checkYear(d.Year); err != nil {
		return err
	}
	if d.Month < Nisan || d.Month > AdarII {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, int(d.Month))
	}
	if d.Month == AdarII && !IsLeapYear(d.Year) {
		return fmt.Errorf("%w: no Adar II in common year %d", ErrInvalidDate, d.Year)
	}
	if max := monthLengths(d.Year)[d.Month]; d.Day < 1 || d.Day > max {
		return fmt.Errorf("%w: day %d of %s %d (month has %d days)",
			ErrInvalidDate, d.Day, d.Month, d.Year, max)
	}
	return nil
}

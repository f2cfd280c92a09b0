package hebcal

import (
	"fmt"
	"time"
)

// GregorianDate is a date in the proleptic Gregorian calendar. Years
// before 1 CE are negative (astronomical numbering minus one: year -3760
// here is 3761 BCE).
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String renders ISO-style "YYYY-MM-DD".
func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// GregorianFromTime truncates a time.Time to its calendar date.
func GregorianFromTime(t time.Time) GregorianDate {
	return GregorianDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// IsGregorianLeapYear applies the standard proleptic rule: divisible by
// 4 except centuries not divisible by 400.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregDaysBeforeMonth[m] is the day-of-year before the first of month m
// in a common year.
var gregDaysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func gregorianDaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Validate checks month and day ranges for the year.
func (d GregorianDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if max := gregorianDaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > max {
		return fmt.Errorf("%w: day %d of %04d-%02d (month has %d days)",
			ErrInvalidDate, d.Day, d.Year, d.Month, max)
	}
	return nil
}

// AbsoluteDay is the shared day count between the two calendars: the
// Rata Die number, day 1 = 1 January 1 CE proleptic Gregorian. It is the
// only interchange value; each valid date in either calendar maps to
// exactly one AbsoluteDay.
type AbsoluteDay int64

// absolute converts a Gregorian date to its day number. The date must
// already be valid.
func (d GregorianDate) absolute() AbsoluteDay {
	y := int64(d.Year)
	leaps := floorDiv(y-1, 4) - floorDiv(y-1, 100) + floorDiv(y-1, 400)
	if IsGregorianLeapYear(d.Year) && d.Month >= 3 {
		leaps++
	}
	return AbsoluteDay((y-1)*365 + int64(gregDaysBeforeMonth[d.Month]) + int64(d.Day) + leaps)
}

// gregorianFromAbsolute inverts absolute by peeling 400/100/4/1-year
// cycles off the day count, then walking the months of the final year.
func gregorianFromAbsolute(rd AbsoluteDay) GregorianDate {
	d0 := int64(rd) - 1
	n400 := floorDiv(d0, 146097)
	d1 := d0 - n400*146097 // 0..146096

	n100 := d1 / 36524
	if n100 > 3 {
		n100 = 3 // last day of a 400-year cycle
	}
	d2 := d1 - n100*36524

	n4 := d2 / 1461
	d3 := d2 - n4*1461

	n1 := d3 / 365
	if n1 > 3 {
		n1 = 3 // 31 December of a leap year
	}

	year := int(400*n400 + 100*n100 + 4*n4 + n1 + 1)
	dayOfYear := int(d3-n1*365) + 1

	month := 1
	for {
		days := gregorianDaysInMonth(year, month)
		if dayOfYear <= days {
			break
		}
		dayOfYear -= days
		month++
	}
	return GregorianDate{Year: year, Month: month, Day: dayOfYear}
}

package hebcal

import "fmt"

// YearType classifies a Hebrew year's length. The classification fixes
// the two variable months: Cheshvan has 30 days only in a Complete year
// and Kislev has 29 only in a Deficient one.
type YearType int

const (
	Deficient YearType = iota // 353 or 383 days
	Regular                   // 354 or 384 days
	Complete                  // 355 or 385 days
)

func (t YearType) String() string {
	switch t {
	case Deficient:
		return "deficient"
	case Regular:
		return "regular"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// yearStartDay returns the day number (days since the Hebrew epoch;
// 1 Tishrei 1 = day 1) on which the civil year begins, after applying the
// four postponement rules to the molad of Tishrei. Day numbers are always
// positive here, so day%7 is a valid weekday (0=Sunday).
func yearStartDay(year int) int64 {
	m := moladOf(year, 1)
	day := m.day()
	tod := m.timeOfDay()

	rosh := day
	switch {
	case tod >= 18*partsPerHour:
		// Molad zaken: conjunction at or after noon.
		rosh++
	case day%7 == 2 && tod >= 9*partsPerHour+204 && !IsLeapYear(year):
		// GaTaRaD: Tuesday molad at or after 9h 204p in a common year.
		rosh++
	case day%7 == 1 && tod >= 15*partsPerHour+589 && IsLeapYear(year-1):
		// BeTuTeKPaT: Monday molad at or after 15h 589p following a leap year.
		rosh++
	}

	// Rosh Hashanah may not fall on Sunday, Wednesday or Friday.
	switch rosh % 7 {
	case 0, 3, 5:
		rosh++
	}
	return rosh
}

// yearLength is the day count of the civil year, one of 353, 354, 355,
// 383, 384 or 385. Resolving year+1 needs only year+1's own molad and
// rules, so the chain never recurses.
func yearLength(year int) int {
	return int(yearStartDay(year+1) - yearStartDay(year))
}

// typeOfLength classifies a year length by its final digit, which is
// unambiguous across both common and leap lengths.
func typeOfLength(length int) YearType {
	switch length % 10 {
	case 3:
		return Deficient
	case 5:
		return Complete
	default:
		return Regular
	}
}

// YearLength returns the total day count of a Hebrew year.
func YearLength(year int) (int, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return yearLength(year), nil
}

// TypeOfYear returns the Deficient/Regular/Complete classification.
func TypeOfYear(year int) (YearType, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	return typeOfLength(yearLength(year)), nil
}

// MonthsInYear returns 12, or 13 in a leap year.
func MonthsInYear(year int) (int, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	if IsLeapYear(year) {
		return 13, nil
	}
	return 12, nil
}

// monthLengths returns the days of each month indexed by Nisan-first
// ordinal. Index 13 (Adar II) is zero in common years, which lets civil
// month walks pass through it without effect.
func monthLengths(year int) [14]int {
	ml := [14]int{0, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 0}
	if IsLeapYear(year) {
		ml[Adar] = 30 // Adar I
		ml[AdarII] = 29
	}
	switch typeOfLength(yearLength(year)) {
	case Deficient:
		ml[Kislev] = 29
	case Complete:
		ml[Cheshvan] = 30
	}
	return ml
}

// MonthLength returns the number of days in the given month of a year.
func MonthLength(year int, m Month) (int, error) {
	if err := checkYear(year); err != nil {
		return 0, err
	}
	if m < Nisan || m > AdarII {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, int(m))
	}
	if m == AdarII && !IsLeapYear(year) {
		return 0, fmt.Errorf("%w: no Adar II in common year %d", ErrInvalidDate, year)
	}
	return monthLengths(year)[m], nil
}

package hebcal

import "fmt"

// hebrewEpoch is the offset between the Hebrew day count (1 Tishrei of
// year 1 = day 1, which is 7 September -3760 Gregorian) and the Rata Die
// number: rd = hebrewDay - hebrewEpoch.
const hebrewEpoch = 1373428

// ToAbsolute maps a Hebrew date to its day number: the year's start day,
// plus the lengths of the months already past in civil order, plus the
// day offset.
func ToAbsolute(d HebrewDate) (AbsoluteDay, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	ml := monthLengths(d.Year)
	days := yearStartDay(d.Year)
	for m := Tishrei; m != d.Month; m = m.next() {
		days += int64(ml[m])
	}
	days += int64(d.Day - 1)
	return AbsoluteDay(days - hebrewEpoch), nil
}

// FromAbsolute maps a day number back to a Hebrew date. The year is
// estimated from the mean year length (235 lunations per 19 years,
// ~365.2468 days) and then corrected; the estimate drifts by at most a
// handful of years across the whole supported range, so the correction
// loops stay bounded.
func FromAbsolute(rd AbsoluteDay) (HebrewDate, error) {
	day := int64(rd) + hebrewEpoch
	if day < 1 {
		return HebrewDate{}, fmt.Errorf("%w: day %d precedes year 1", ErrYearRange, int64(rd))
	}
	if day >= yearStartDay(MaxYear+1) {
		return HebrewDate{}, fmt.Errorf("%w: day %d past year %d", ErrYearRange, int64(rd), MaxYear)
	}

	year := int(day*19*partsPerDay/(235*monthParts)) + 1
	if year > MaxYear {
		year = MaxYear
	}
	for yearStartDay(year+1) <= day {
		year++
	}
	for yearStartDay(year) > day {
		year--
	}

	ml := monthLengths(year)
	days := yearStartDay(year)
	month := Tishrei
	for days+int64(ml[month]) <= day {
		days += int64(ml[month])
		month = month.next()
	}
	return HebrewDate{Year: year, Month: month, Day: int(day-days) + 1}, nil
}

// FromGregorian converts a Gregorian date to its Hebrew equivalent.
func FromGregorian(g GregorianDate) (HebrewDate, error) {
	if err := g.Validate(); err != nil {
		return HebrewDate{}, err
	}
	return FromAbsolute(g.absolute())
}

// ToGregorian converts a Hebrew date to its Gregorian equivalent.
func ToGregorian(d HebrewDate) (GregorianDate, error) {
	rd, err := ToAbsolute(d)
	if err != nil {
		return GregorianDate{}, err
	}
	return gregorianFromAbsolute(rd), nil
}

// GregorianToAbsolute exposes the Gregorian side of the shared day count.
func GregorianToAbsolute(g GregorianDate) (AbsoluteDay, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	return g.absolute(), nil
}

// GregorianFromAbsolute exposes the inverse mapping.
func GregorianFromAbsolute(rd AbsoluteDay) GregorianDate {
	return gregorianFromAbsolute(rd)
}

// RoshHashanah returns the Gregorian date on which a Hebrew year begins,
// after the postponement rules.
func RoshHashanah(year int) (GregorianDate, error) {
	if err := checkYear(year); err != nil {
		return GregorianDate{}, err
	}
	return gregorianFromAbsolute(AbsoluteDay(yearStartDay(year) - hebrewEpoch)), nil
}

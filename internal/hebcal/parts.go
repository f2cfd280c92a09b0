// Package hebcal converts dates between the proleptic Gregorian calendar
// and the traditional Hebrew lunisolar calendar.
//
// All time-of-day arithmetic uses chalakim ("parts", 1080 parts = 1 hour),
// the fixed-point unit the calendar was defined in. Every rule is exact in
// integers; no floating point appears anywhere in the conversion.
package hebcal

// Fixed-point constants. The Jewish day begins at 18:00, so hour 0 of a
// weekday is 6pm of the previous civil evening.
const (
	partsPerHour = 1080
	hoursPerDay  = 24
	partsPerDay  = hoursPerDay * partsPerHour // 25920

	// monthParts is one mean synodic month: 29d 12h 793p.
	monthParts = 29*partsPerDay + 12*partsPerHour + 793

	// firstMolad is the epoch molad ("BaHaRaD"): the molad of Tishrei of
	// year 1, at day 1 (a Monday), 5 hours and 204 parts.
	firstMolad = 1*partsPerDay + 5*partsPerHour + 204
)

// partsTime is an instant measured in chalakim since the Hebrew epoch.
// Values are always non-negative; days, hours and parts are recovered by
// division, so carries are never an issue.
type partsTime int64

// day returns the whole days elapsed since the epoch. Day 1 corresponds
// to 1 Tishrei of year 1 and falls on a Monday.
func (t partsTime) day() int64 {
	return int64(t) / partsPerDay
}

// timeOfDay returns the chalakim elapsed within the day, 0..25919.
func (t partsTime) timeOfDay() int64 {
	return int64(t) % partsPerDay
}

func (t partsTime) hours() int {
	return int(t.timeOfDay() / partsPerHour)
}

func (t partsTime) parts() int {
	return int(int64(t) % partsPerHour)
}

// weekday returns 0=Sunday .. 6=Saturday for the day the instant falls in.
func (t partsTime) weekday() int {
	return int(t.day() % 7)
}

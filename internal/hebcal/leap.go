package hebcal

// IsLeapYear reports whether the Hebrew year has 13 months. Within each
// 19-year Metonic cycle the leap years sit at positions 3, 6, 8, 11, 14,
// 17 and 19, which the single expression below encodes.
func IsLeapYear(year int) bool {
	return (7*year+1)%19 < 7
}

// leapYearsBefore counts the leap years strictly before year, since the
// epoch. Together with the 12 months of every common year this locates a
// year's first molad within the month sequence.
func leapYearsBefore(year int) int {
	return (7*(year-1) + 1) / 19
}

// monthsBeforeYear counts the months elapsed from the epoch molad to the
// molad of Tishrei of year.
func monthsBeforeYear(year int) int64 {
	return int64(12*(year-1) + leapYearsBefore(year))
}

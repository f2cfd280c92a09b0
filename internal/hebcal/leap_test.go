package hebcal

import "testing"

func TestIsLeapYear_KnownYears(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{5700, true},
		{5701, false},
		{5702, false},
		{5703, true},
		{5782, true},
		{5783, false},
		{5784, true},
		{5785, false},
		{5786, false},
		{5787, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsLeapYear_Periodicity(t *testing.T) {
	// Exactly 7 of every 19 consecutive years are leap, at cycle
	// positions 3, 6, 8, 11, 14, 17 and 19 (i.e. 0 mod 19).
	leapPositions := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 0: true}

	for start := 1; start <= 1000*19; start += 19 {
		count := 0
		for year := start; year < start+19; year++ {
			leap := IsLeapYear(year)
			if leap {
				count++
			}
			if leap != leapPositions[year%19] {
				t.Fatalf("IsLeapYear(%d) = %v, but cycle position %d should be %v",
					year, leap, year%19, leapPositions[year%19])
			}
		}
		if count != 7 {
			t.Fatalf("window starting %d has %d leap years, want 7", start, count)
		}
	}
}

func TestLeapYearsBefore(t *testing.T) {
	// leapYearsBefore must agree with counting IsLeapYear one by one.
	count := 0
	for year := 1; year <= 500; year++ {
		if got := leapYearsBefore(year); got != count {
			t.Fatalf("leapYearsBefore(%d) = %d, want %d", year, got, count)
		}
		if IsLeapYear(year) {
			count++
		}
	}
}

func TestMonthsBeforeYear(t *testing.T) {
	tests := []struct {
		year int
		want int64
	}{
		{1, 0},
		{2, 12},
		{4, 37},   // years 1, 2 common; year 3 leap
		{20, 235}, // one full Metonic cycle
	}

	for _, tt := range tests {
		if got := monthsBeforeYear(tt.year); got != tt.want {
			t.Errorf("monthsBeforeYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

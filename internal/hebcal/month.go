package hebcal

// Month is a Hebrew month, numbered Nisan-first: Nisan=1 through Adar=12,
// with Adar II=13 existing only in leap years. The civil year begins at
// Tishrei (month 7); the year number increments there, so months 1..6
// fall at the end of their civil year.
type Month int

const (
	Nisan Month = 1 + iota
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Tevet
	Shevat
	Adar
	AdarII
)

var monthNames = [...]string{
	Nisan:    "Nisan",
	Iyar:     "Iyar",
	Sivan:    "Sivan",
	Tammuz:   "Tammuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Tevet:    "Tevet",
	Shevat:   "Shevat",
	Adar:     "Adar",
	AdarII:   "Adar II",
}

// String returns the month name. Month 12 is rendered "Adar" regardless
// of year; use HebrewDate.String for the leap-aware "Adar I" form.
func (m Month) String() string {
	if m < Nisan || m > AdarII {
		return "Unknown"
	}
	return monthNames[m]
}

// next returns the month that follows m in civil order. The civil year
// runs Tishrei..Adar (II), then wraps to Nisan..Elul.
func (m Month) next() Month {
	if m == AdarII {
		return Nisan
	}
	return m + 1
}

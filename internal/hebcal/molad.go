package hebcal

import "fmt"

// Molad is the mean lunar conjunction anchoring a Hebrew month.
// Weekday is 0=Sunday..6=Saturday. Hours counts from the start of the
// Jewish day at 18:00, so hour 18 is noon; Parts is the chalakim
// remainder below one hour.
type Molad struct {
	Weekday int `json:"weekday"` // 0..6
	Hours   int `json:"hours"`   // 0..23
	Parts   int `json:"parts"`   // 0..1079
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String renders the molad with a civil clock time, e.g.
// "Thu 03:21 and 13 parts". One minute is 18 parts.
func (m Molad) String() string {
	hour := (m.Hours + 18) % 24
	return fmt.Sprintf("%s %02d:%02d and %d parts",
		weekdayNames[m.Weekday], hour, m.Parts/18, m.Parts%18)
}

// moladOf returns the molad of the given month of a year, with the month
// counted from Tishrei (1 = Tishrei) since that is the month the molad
// sequence is anchored to.
func moladOf(year, monthFromTishrei int) partsTime {
	months := monthsBeforeYear(year) + int64(monthFromTishrei-1)
	return partsTime(firstMolad + months*monthParts)
}

// MoladOfYear returns the molad of Tishrei of the given Hebrew year,
// the conjunction the postponement rules are applied to.
func MoladOfYear(year int) (Molad, error) {
	if err := checkYear(year); err != nil {
		return Molad{}, err
	}
	m := moladOf(year, 1)
	return Molad{
		Weekday: m.weekday(),
		Hours:   m.hours(),
		Parts:   m.parts(),
	}, nil
}

// Command luach prints Hebrew calendar information on the terminal.
//
// With no flags it shows today's date in both calendars and the molad of
// the current Hebrew year.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zapponejosh/hebcal-api/internal/hebcal"
)

func main() {
	gregStr := flag.String("greg", "", "Gregorian date to convert (YYYY-MM-DD)")
	hebStr := flag.String("hebrew", "", "Hebrew date to convert (year-month-day ordinals, e.g. 5785-7-1)")
	yearFlag := flag.Int("year", 0, "Print a summary of the given Hebrew year")
	flag.Parse()

	switch {
	case *gregStr != "":
		t, err := time.Parse("2006-01-02", *gregStr)
		if err != nil {
			fatalf("invalid -greg value %q: use YYYY-MM-DD", *gregStr)
		}
		printConversion(hebcal.GregorianFromTime(t))

	case *hebStr != "":
		var y, m, d int
		if _, err := fmt.Sscanf(*hebStr, "%d-%d-%d", &y, &m, &d); err != nil {
			fatalf("invalid -hebrew value %q: use year-month-day ordinals", *hebStr)
		}
		hd := hebcal.HebrewDate{Year: y, Month: hebcal.Month(m), Day: d}
		g, err := hebcal.ToGregorian(hd)
		if err != nil {
			fatalf("convert: %v", err)
		}
		fmt.Printf("%s = %s\n", hd, g)

	case *yearFlag != 0:
		printYear(*yearFlag)

	default:
		today := hebcal.GregorianFromTime(time.Now())
		hd := printConversion(today)
		molad, err := hebcal.MoladOfYear(hd.Year)
		if err != nil {
			fatalf("molad: %v", err)
		}
		fmt.Printf("Molad %d: %s\n", hd.Year, molad)
	}
}

func printConversion(g hebcal.GregorianDate) hebcal.HebrewDate {
	hd, err := hebcal.FromGregorian(g)
	if err != nil {
		fatalf("convert: %v", err)
	}
	fmt.Printf("%s = %s\n", g, hd)
	return hd
}

func printYear(year int) {
	length, err := hebcal.YearLength(year)
	if err != nil {
		fatalf("year %d: %v", year, err)
	}
	yearType, err := hebcal.TypeOfYear(year)
	if err != nil {
		fatalf("year %d: %v", year, err)
	}
	rosh, err := hebcal.RoshHashanah(year)
	if err != nil {
		fatalf("year %d: %v", year, err)
	}
	molad, err := hebcal.MoladOfYear(year)
	if err != nil {
		fatalf("year %d: %v", year, err)
	}

	kind := "common"
	if hebcal.IsLeapYear(year) {
		kind = "leap"
	}
	fmt.Printf("Year %d: %s, %d days (%s)\n", year, kind, length, yearType)
	fmt.Printf("Rosh Hashanah: %s\n", rosh)
	fmt.Printf("Molad: %s\n", molad)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

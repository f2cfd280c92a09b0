package hebcal

import (
	"context"
	"fmt"
	"sort"

	"github.com/zapponejosh/hebcal-api/internal/database"
)

// ResolvedHoliday is a holiday definition placed into a concrete Hebrew
// year, with its Gregorian date computed through the conversion engine.
type ResolvedHoliday struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Days      int           `json:"days"`
	Hebrew    HebrewDate    `json:"hebrew"`
	Display   string        `json:"display"`
	Gregorian GregorianDate `json:"gregorian"`

	abs AbsoluteDay
}

// Queryable is the slice of the database the resolver needs. It lets
// tests substitute a fixture without a real store.
type Queryable interface {
	ListHolidays(ctx context.Context) ([]database.Holiday, error)
}

// HolidayResolver resolves stored holiday definitions against a year.
type HolidayResolver struct {
	db Queryable
}

// NewHolidayResolver creates a resolver over the given store.
func NewHolidayResolver(db Queryable) *HolidayResolver {
	return &HolidayResolver{db: db}
}

// ResolveYear returns every defined holiday of the given Hebrew year in
// civil order. Definitions fixed in Adar are observed in the final Adar,
// which in a leap year is Adar II.
func (hr *HolidayResolver) ResolveYear(ctx context.Context, year int) ([]ResolvedHoliday, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}

	defs, err := hr.db.ListHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	leap := IsLeapYear(year)
	out := make([]ResolvedHoliday, 0, len(defs))
	for _, def := range defs {
		month := Month(def.Month)
		if month == Adar && leap {
			month = AdarII
		}
		date := HebrewDate{Year: year, Month: month, Day: def.Day}
		abs, err := ToAbsolute(date)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", def.Name, err)
		}
		out = append(out, ResolvedHoliday{
			Name:      def.Name,
			Category:  def.Category,
			Days:      def.Days,
			Hebrew:    date,
			Display:   date.String(),
			Gregorian: gregorianFromAbsolute(abs),
			abs:       abs,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].abs < out[j].abs })
	return out, nil
}

package hebcal

import (
	"context"
	"errors"
	"testing"

	"github.com/zapponejosh/hebcal-api/internal/database"
)

// fixtureStore is an in-memory Queryable for resolver tests.
type fixtureStore struct {
	holidays []database.Holiday
	err      error
}

func (s *fixtureStore) ListHolidays(ctx context.Context) ([]database.Holiday, error) {
	return s.holidays, s.err
}

func testDefinitions() []database.Holiday {
	return []database.Holiday{
		{ID: 1, Name: "Rosh Hashanah", Category: "major", Month: 7, Day: 1, Days: 2},
		{ID: 2, Name: "Chanukah", Category: "minor", Month: 9, Day: 25, Days: 8},
		{ID: 3, Name: "Purim", Category: "minor", Month: 12, Day: 14, Days: 1},
		{ID: 4, Name: "Pesach", Category: "major", Month: 1, Day: 15, Days: 7},
	}
}

func TestHolidayResolver_ResolveYear(t *testing.T) {
	resolver := NewHolidayResolver(&fixtureStore{holidays: testDefinitions()})

	got, err := resolver.ResolveYear(context.Background(), 5785)
	if err != nil {
		t.Fatalf("ResolveYear(5785) failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d holidays, want 4", len(got))
	}

	want := map[string]GregorianDate{
		"Rosh Hashanah": {2024, 10, 3},
		"Chanukah":      {2024, 12, 26},
		"Purim":         {2025, 3, 14},
		"Pesach":        {2025, 4, 13},
	}
	for _, h := range got {
		if g, ok := want[h.Name]; !ok || h.Gregorian != g {
			t.Errorf("%s resolved to %s, want %s", h.Name, h.Gregorian, g)
		}
	}

	// Results come back in date order.
	for i := 1; i < len(got); i++ {
		if got[i].abs <= got[i-1].abs {
			t.Errorf("holidays out of order: %s before %s", got[i-1].Name, got[i].Name)
		}
	}
}

func TestHolidayResolver_AdarInLeapYear(t *testing.T) {
	resolver := NewHolidayResolver(&fixtureStore{holidays: testDefinitions()})

	// 5784 is a leap year, so Purim moves to Adar II.
	got, err := resolver.ResolveYear(context.Background(), 5784)
	if err != nil {
		t.Fatalf("ResolveYear(5784) failed: %v", err)
	}

	for _, h := range got {
		if h.Name != "Purim" {
			continue
		}
		if h.Hebrew.Month != AdarII {
			t.Errorf("Purim month = %s, want Adar II", h.Hebrew.Month)
		}
		if want := (GregorianDate{2024, 3, 24}); h.Gregorian != want {
			t.Errorf("Purim 5784 = %s, want %s", h.Gregorian, want)
		}
		if h.Display != "5784-Adar II-14" {
			t.Errorf("Purim display = %q, want %q", h.Display, "5784-Adar II-14")
		}
		return
	}
	t.Fatal("Purim missing from resolved holidays")
}

func TestHolidayResolver_Errors(t *testing.T) {
	resolver := NewHolidayResolver(&fixtureStore{holidays: testDefinitions()})
	if _, err := resolver.ResolveYear(context.Background(), 0); !errors.Is(err, ErrInvalidYear) {
		t.Errorf("ResolveYear(0) error = %v, want ErrInvalidYear", err)
	}

	storeErr := errors.New("store down")
	resolver = NewHolidayResolver(&fixtureStore{err: storeErr})
	if _, err := resolver.ResolveYear(context.Background(), 5785); !errors.Is(err, storeErr) {
		t.Errorf("ResolveYear error = %v, want wrapped %v", err, storeErr)
	}
}

package database

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// A second run must apply nothing.
	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Migrate applied %d migrations, want 0", applied)
	}
}

func TestHealth(t *testing.T) {
	db := openTestDB(t)
	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestListHolidays(t *testing.T) {
	db := openTestDB(t)

	holidays, err := db.ListHolidays(context.Background())
	if err != nil {
		t.Fatalf("ListHolidays failed: %v", err)
	}
	if len(holidays) == 0 {
		t.Fatal("seed migration left the holidays table empty")
	}

	// Civil ordering: the year opens with Rosh Hashanah and closes in Av.
	if holidays[0].Name != "Rosh Hashanah" {
		t.Errorf("first holiday = %q, want Rosh Hashanah", holidays[0].Name)
	}
	if last := holidays[len(holidays)-1]; last.Month != 5 {
		t.Errorf("last holiday %q in month %d, want Av (5)", last.Name, last.Month)
	}

	for _, h := range holidays {
		if h.Month < 1 || h.Month > 12 {
			t.Errorf("%s has month %d outside 1..12", h.Name, h.Month)
		}
		if h.Day < 1 || h.Day > 30 {
			t.Errorf("%s has day %d outside 1..30", h.Name, h.Day)
		}
		if h.Days < 1 {
			t.Errorf("%s has non-positive duration %d", h.Name, h.Days)
		}
	}
}

func TestGetHolidayByName(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	h, err := db.GetHolidayByName(ctx, "Pesach")
	if err != nil {
		t.Fatalf("GetHolidayByName(Pesach) failed: %v", err)
	}
	if h.Month != 1 || h.Day != 15 || h.Days != 7 {
		t.Errorf("Pesach = month %d day %d x%d, want month 1 day 15 x7", h.Month, h.Day, h.Days)
	}

	_, err = db.GetHolidayByName(ctx, "No Such Day")
	if !IsNotFound(err) {
		t.Errorf("GetHolidayByName(missing) error = %v, want not-found", err)
	}
}

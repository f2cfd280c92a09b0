package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/hebcal-api/internal/config"
	"github.com/zapponejosh/hebcal-api/internal/database"
	"github.com/zapponejosh/hebcal-api/internal/hebcal"
	"github.com/zapponejosh/hebcal-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *hebcal.HolidayResolver
	cfg      *config.Config
	logger   *slog.Logger
	clock    Clock
}

// NewHandlers creates a new Handlers instance. A nil clock defaults to
// the system clock.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger, clock Clock) *Handlers {
	if clock == nil {
		clock = SystemClock()
	}
	return &Handlers{
		db:       db,
		resolver: hebcal.NewHolidayResolver(db),
		cfg:      cfg,
		logger:   logger,
		clock:    clock,
	}
}

// conversion is the response body for date conversions.
type conversion struct {
	Gregorian hebcal.GregorianDate `json:"gregorian"`
	Hebrew    hebcal.HebrewDate    `json:"hebrew"`
	Display   string               `json:"display"`
	Weekday   string               `json:"weekday"`
}

func newConversion(g hebcal.GregorianDate, h hebcal.HebrewDate) (conversion, error) {
	rd, err := hebcal.GregorianToAbsolute(g)
	if err != nil {
		return conversion{}, err
	}
	// Rata Die day 1 is a Monday; day numbers before the epoch are negative.
	weekday := time.Weekday((int64(rd)%7 + 7) % 7)
	return conversion{
		Gregorian: g,
		Hebrew:    h,
		Display:   h.String(),
		Weekday:   weekday.String(),
	}, nil
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}
	WriteSuccess(w, map[string]string{"status": "healthy"})
}

// ConvertGregorian handles GET /api/v1/convert/gregorian/{date}
func (h *Handlers) ConvertGregorian(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	g := hebcal.GregorianFromTime(t)

	hd, err := hebcal.FromGregorian(g)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	resp, err := newConversion(g, hd)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	WriteSuccess(w, resp)
}

// ConvertHebrew handles GET /api/v1/convert/hebrew/{year}/{month}/{day}.
// Month is the Nisan-first ordinal (1 = Nisan .. 12 = Adar, 13 = Adar II
// in leap years).
func (h *Handlers) ConvertHebrew(w http.ResponseWriter, r *http.Request) {
	year, err1 := strconv.Atoi(chi.URLParam(r, "year"))
	month, err2 := strconv.Atoi(chi.URLParam(r, "month"))
	day, err3 := strconv.Atoi(chi.URLParam(r, "day"))
	if err1 != nil || err2 != nil || err3 != nil {
		WriteBadRequest(w, "Year, month and day must be integers")
		return
	}

	hd := hebcal.HebrewDate{Year: year, Month: hebcal.Month(month), Day: day}
	g, err := hebcal.ToGregorian(hd)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	resp, err := newConversion(g, hd)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	WriteSuccess(w, resp)
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	g := h.clock.Today()

	hd, err := hebcal.FromGregorian(g)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to convert today", slog.Any("error", err))
		WriteInternalError(w, "Failed to convert today's date")
		return
	}

	resp, err := newConversion(g, hd)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to convert today", slog.Any("error", err))
		WriteInternalError(w, "Failed to convert today's date")
		return
	}
	WriteSuccess(w, resp)
}

// GetMolad handles GET /api/v1/molad/{year}
func (h *Handlers) GetMolad(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	molad, err := hebcal.MoladOfYear(year)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":    year,
		"molad":   molad,
		"display": molad.String(),
	})
}

// monthEntry describes one month of a year for the year summary.
type monthEntry struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Days    int    `json:"days"`
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	length, err := hebcal.YearLength(year)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	yearType, err := hebcal.TypeOfYear(year)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	rosh, err := hebcal.RoshHashanah(year)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	leap := hebcal.IsLeapYear(year)
	last := hebcal.Adar
	if leap {
		last = hebcal.AdarII
	}

	// Months in civil order, Tishrei through Elul.
	var months []monthEntry
	for m, done := hebcal.Tishrei, false; !done; {
		days, err := hebcal.MonthLength(year, m)
		if err != nil {
			h.logger.Error("month table", slog.Any("error", err))
			WriteInternalError(w, "Failed to build month table")
			return
		}
		name := m.String()
		if m == hebcal.Adar && leap {
			name = "Adar I"
		}
		months = append(months, monthEntry{Ordinal: int(m), Name: name, Days: days})

		done = m == hebcal.Elul
		if m == last {
			m = hebcal.Nisan
		} else {
			m++
		}
	}

	WriteSuccess(w, map[string]interface{}{
		"year":           year,
		"leap":           leap,
		"length":         length,
		"classification": yearType.String(),
		"rosh_hashanah":  rosh.String(),
		"months":         months,
	})
}

// GetHolidays handles GET /api/v1/holidays/{year}
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, "Year must be an integer")
		return
	}

	holidays, err := h.resolver.ResolveYear(r.Context(), year)
	if err != nil {
		if errors.Is(err, hebcal.ErrInvalidYear) || errors.Is(err, hebcal.ErrYearRange) {
			h.writeConversionError(w, err)
			return
		}
		logger.FromContext(r.Context()).Error("failed to resolve holidays",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve holidays")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":     year,
		"holidays": holidays,
	})
}

// writeConversionError maps engine errors onto the API error taxonomy.
func (h *Handlers) writeConversionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hebcal.ErrInvalidDate):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, hebcal.ErrInvalidYear):
		WriteError(w, http.StatusBadRequest, err.Error(), "INVALID_YEAR")
	case errors.Is(err, hebcal.ErrYearRange):
		WriteError(w, http.StatusBadRequest, err.Error(), "YEAR_RANGE")
	default:
		h.logger.Error("conversion failed", slog.Any("error", err))
		WriteInternalError(w, "Conversion failed")
	}
}

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/zapponejosh/hebcal-api/internal/config"
	"github.com/zapponejosh/hebcal-api/internal/database"
	"github.com/zapponejosh/hebcal-api/internal/hebcal"
)

// fixedClock pins "today" so handler output is deterministic.
type fixedClock struct {
	date hebcal.GregorianDate
}

func (c fixedClock) Today() hebcal.GregorianDate { return c.date }

// setupTest builds a router over an in-memory database.
func setupTest(t *testing.T) http.Handler {
	t.Helper()

	dbCfg := database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := database.Open(dbCfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := &config.Config{
		Port:         8080,
		Env:          config.EnvDevelopment,
		DatabasePath: ":memory:",
		LogLevel:     "error",
		LogFormat:    "text",
	}

	clock := fixedClock{date: hebcal.GregorianDate{Year: 2025, Month: 1, Day: 1}}
	handlers := NewHandlers(db, cfg, logger, clock)
	return SetupRoutes(handlers, logger)
}

// doGet performs a request and decodes the response envelope.
func doGet(t *testing.T, router http.Handler, path string) (int, Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response for %s: %v (body: %s)", path, err, rec.Body.String())
	}
	return rec.Code, resp
}

// dataMap re-decodes the envelope's data as a generic map.
func dataMap(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return m
}

func TestHealthCheck(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/health")
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !resp.Success {
		t.Error("health check should succeed")
	}
}

func TestConvertGregorian(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/convert/gregorian/2025-01-01")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	if display := data["display"]; display != "5785-Tevet-01" {
		t.Errorf("display = %v, want 5785-Tevet-01", display)
	}
	if weekday := data["weekday"]; weekday != "Wednesday" {
		t.Errorf("weekday = %v, want Wednesday", weekday)
	}

	hebrew := data["hebrew"].(map[string]interface{})
	if hebrew["year"].(float64) != 5785 || hebrew["month"].(float64) != 10 || hebrew["day"].(float64) != 1 {
		t.Errorf("hebrew = %v, want 5785/10/1", hebrew)
	}
}

func TestConvertGregorian_BadInput(t *testing.T) {
	router := setupTest(t)

	tests := []struct {
		path string
		code string
	}{
		{"/api/v1/convert/gregorian/not-a-date", "BAD_REQUEST"},
		{"/api/v1/convert/gregorian/2025-02-30", "BAD_REQUEST"},
	}

	for _, tt := range tests {
		status, resp := doGet(t, router, tt.path)
		if status != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.path, status)
		}
		if resp.Error == nil || resp.Error.Code != tt.code {
			t.Errorf("%s: error = %+v, want code %s", tt.path, resp.Error, tt.code)
		}
	}
}

func TestConvertHebrew(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/convert/hebrew/5785/1/1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	greg := data["gregorian"].(map[string]interface{})
	if greg["year"].(float64) != 2025 || greg["month"].(float64) != 3 || greg["day"].(float64) != 30 {
		t.Errorf("gregorian = %v, want 2025/3/30", greg)
	}
}

func TestConvertHebrew_Errors(t *testing.T) {
	router := setupTest(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/v1/convert/hebrew/5785/13/1", http.StatusBadRequest, "INVALID_DATE"},
		{"/api/v1/convert/hebrew/5785/7/31", http.StatusBadRequest, "INVALID_DATE"},
		{"/api/v1/convert/hebrew/0/7/1", http.StatusBadRequest, "INVALID_YEAR"},
		{"/api/v1/convert/hebrew/99999999/7/1", http.StatusBadRequest, "YEAR_RANGE"},
		{"/api/v1/convert/hebrew/x/7/1", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		status, resp := doGet(t, router, tt.path)
		if status != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.path, status, tt.status)
		}
		if resp.Error == nil || resp.Error.Code != tt.code {
			t.Errorf("%s: error = %+v, want code %s", tt.path, resp.Error, tt.code)
		}
	}
}

func TestGetToday(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/today")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	if display := data["display"]; display != "5785-Tevet-01" {
		t.Errorf("display = %v, want 5785-Tevet-01 (clock is pinned)", display)
	}
}

func TestGetMolad(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/molad/5785")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	molad := data["molad"].(map[string]interface{})
	if molad["weekday"].(float64) != 4 || molad["hours"].(float64) != 9 || molad["parts"].(float64) != 391 {
		t.Errorf("molad = %v, want weekday 4, 9h 391p", molad)
	}

	status, resp = doGet(t, router, "/api/v1/molad/0")
	if status != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != "INVALID_YEAR" {
		t.Errorf("molad/0: status %d error %+v, want 400 INVALID_YEAR", status, resp.Error)
	}
}

func TestGetYear(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/years/5784")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	if data["leap"] != true {
		t.Error("5784 should be a leap year")
	}
	if data["length"].(float64) != 383 {
		t.Errorf("length = %v, want 383", data["length"])
	}
	if data["classification"] != "deficient" {
		t.Errorf("classification = %v, want deficient", data["classification"])
	}
	if data["rosh_hashanah"] != "2023-09-16" {
		t.Errorf("rosh_hashanah = %v, want 2023-09-16", data["rosh_hashanah"])
	}

	months := data["months"].([]interface{})
	if len(months) != 13 {
		t.Fatalf("got %d months, want 13", len(months))
	}
	first := months[0].(map[string]interface{})
	if first["name"] != "Tishrei" || first["days"].(float64) != 30 {
		t.Errorf("first month = %v, want Tishrei with 30 days", first)
	}
}

func TestGetHolidays(t *testing.T) {
	router := setupTest(t)

	status, resp := doGet(t, router, "/api/v1/holidays/5785")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := dataMap(t, resp)
	holidays := data["holidays"].([]interface{})
	if len(holidays) == 0 {
		t.Fatal("no holidays resolved")
	}

	first := holidays[0].(map[string]interface{})
	if first["name"] != "Rosh Hashanah" {
		t.Errorf("first holiday = %v, want Rosh Hashanah", first["name"])
	}
	greg := first["gregorian"].(map[string]interface{})
	if greg["year"].(float64) != 2024 || greg["month"].(float64) != 10 || greg["day"].(float64) != 3 {
		t.Errorf("Rosh Hashanah 5785 = %v, want 2024/10/3", greg)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}

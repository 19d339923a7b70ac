package water

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(newMockWaterRepo())
	return NewHandler(svc), echo.New()
}

func TestCreateReading_Handler_StatusComputed(t *testing.T) {
	h, e := newTestHandler()
	body := `{
		"tds_value": 1200,
		"ph_level": 8.8,
		"turbidity": 6.0,
		"chlorine_level": 0.1,
		"tested_by": "Block Water Testing Lab",
		"location": {"lat": 26.2, "lng": 92.9, "address": "Majuli handpump 4"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateReading(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var result QualityData
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.Status != StatusUnsafe {
		t.Errorf("expected unsafe, got %q", result.Status)
	}
}

func TestCreateReading_Handler_MissingTestedBy(t *testing.T) {
	h, e := newTestHandler()
	body := `{"tds_value": 300, "ph_level": 7.0, "turbidity": 1.0, "chlorine_level": 0.5}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateReading(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCreateReading_Handler_MissingMeasurements(t *testing.T) {
	h, e := newTestHandler()
	body := `{
		"tested_by": "Block Water Testing Lab",
		"location": {"lat": 26.2, "lng": 92.9, "address": "Majuli handpump 4"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateReading(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestListReadings_Handler_Empty(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListReadings(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

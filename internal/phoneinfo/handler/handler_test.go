package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phone_info_backend/internal/phoneinfo/service"
	"phone_info_backend/internal/phoneinfo/transport"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"
	"phone_info_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.New(phone.NewProvider(), logger.New("test"))
	h := New(svc, validator.New(), "US")

	r := gin.New()
	r.GET("/phone-info", h.Lookup)
	r.GET("/phone-types", h.Types)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLookup_Success(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, "/phone-info?phone_number=%2B14155552671")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body transport.PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.CountryCode != 1 {
		t.Fatalf("expected country_code 1, got %d", body.CountryCode)
	}
	if body.NationalNumber != 4155552671 {
		t.Fatalf("expected national_number 4155552671, got %d", body.NationalNumber)
	}
	if !body.IsValid {
		t.Fatal("expected is_valid true")
	}
	if body.Country != "United States" {
		t.Fatalf("expected United States, got %q", body.Country)
	}
}

func TestLookup_DefaultRegionApplied(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, "/phone-info?phone_number=(415)%20555-2671")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body transport.PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.CountryCode != 1 {
		t.Fatalf("expected fallback region US, got country_code %d", body.CountryCode)
	}
}

func TestLookup_ErrorsDeliveredWithStatusOK(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name      string
		target    string
		wantError string
	}{
		{"letters", "/phone-info?phone_number=abcdefghij", "Invalid phone number format"},
		{"emergency", "/phone-info?phone_number=911", "Emergency number"},
		{"too short", "/phone-info?phone_number=123456", "Phone number too short"},
		{"missing parameter", "/phone-info", "Invalid phone number format"},
		{"bad region", "/phone-info?phone_number=%2B14155552671&default_region=USA", "Invalid phone number format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, r, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200 even on failure, got %d", rec.Code)
			}

			var body transport.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body.Error != tc.wantError {
				t.Fatalf("expected error %q, got %q", tc.wantError, body.Error)
			}
			if body.Detail == "" {
				t.Fatal("expected a non-empty detail")
			}
		})
	}
}

func TestLookup_RegionIsCaseInsensitive(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, "/phone-info?phone_number=(415)%20555-2671&default_region=us")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body transport.PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.CountryCode != 1 {
		t.Fatalf("expected lowercase region to be accepted, got country_code %d", body.CountryCode)
	}
}

func TestTypes_ListsAllWireCodes(t *testing.T) {
	r := newTestRouter(t)

	rec := doRequest(t, r, "/phone-types")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(body))
	}
	for code, want := range map[string]string{
		"0":  "FIXED_LINE",
		"1":  "MOBILE",
		"27": "EMERGENCY",
		"99": "UNKNOWN",
	} {
		if body[code] != want {
			t.Fatalf("expected code %s to be %s, got %q", code, want, body[code])
		}
	}
}

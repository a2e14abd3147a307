package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uacast/internal/model"
)

func TestForecastEndpoint(t *testing.T) {
	router := New().Router()

	body := `{
		"monthly_budget": 250000,
		"cpi": 4.0,
		"arpdau": 0.25,
		"anchors": {"d1": 35, "d7": 12, "d14": 8, "d30": 5, "d90": 3, "d180": 2.2, "d360": 1.5}
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/forecast", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var res model.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.InstallsPerCohort != 62500 {
		t.Errorf("installs = %v, want 62500", res.InstallsPerCohort)
	}
	if len(res.Curve) != 1081 {
		t.Errorf("curve length = %d, want 1081", len(res.Curve))
	}
	if res.Curve[0] != 1.0 {
		t.Errorf("curve[0] = %v, want 1.0", res.Curve[0])
	}
}

func TestForecastEndpointBadBody(t *testing.T) {
	router := New().Router()

	req := httptest.NewRequest(http.MethodPost, "/v1/forecast", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStatusCountsEvaluations(t *testing.T) {
	srv := New()
	router := srv.Router()

	body := `{"monthly_budget": 1000, "cpi": 1, "arpdau": 0.1}`
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/forecast", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("forecast %d: status = %d", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var st Status
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if st.Evaluations != 3 {
		t.Errorf("evaluations = %d, want 3", st.Evaluations)
	}
	if st.StartedAt.IsZero() {
		t.Error("started_at is zero")
	}
}

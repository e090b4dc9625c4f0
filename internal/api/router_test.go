package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/putpricer/internal/domain/dto"
	"github.com/guttosm/putpricer/internal/pricing"
	"github.com/guttosm/putpricer/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// real engine behind the router, no history
	svc := service.NewPricingService(pricing.NewEngine(), nil, 1000)
	r := NewRouter(NewHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/options/price", bytes.NewBufferString(validBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var resp dto.PriceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 3 || resp.Values[0] <= resp.Values[1] || resp.Values[1] <= resp.Values[2] {
		t.Fatalf("unexpected values: %+v", resp.Values)
	}

	// negative spot through the whole stack
	bad := `{"spots":[-1,10],"strike":60,"risk_free_rate":0.01,"dividend_yield":0.02,"time_to_maturity":1,"volatility":0.05}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/options/price", bytes.NewBufferString(bad))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// history disabled
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	okPing := func() error { return nil }
	failPing := func() error { return assertErr{} }

	cases := []struct {
		name       string
		ping       func() error
		path       string
		want       int
		wantStatus string
	}{
		{name: "healthz ignores db", ping: failPing, path: "/healthz", want: 200, wantStatus: "ok"},
		{name: "readyz history disabled", ping: nil, path: "/readyz", want: 200, wantStatus: "ready"},
		{name: "readyz db reachable", ping: okPing, path: "/readyz", want: 200, wantStatus: "ready"},
		{name: "readyz db down", ping: failPing, path: "/readyz", want: 503, wantStatus: "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["status"] != tc.wantStatus {
				t.Fatalf("status=%q, want %q", body["status"], tc.wantStatus)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }

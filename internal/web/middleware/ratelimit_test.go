package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_Burst(t *testing.T) {
	rl := NewRateLimiter(60, 2)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if !rl.Allow("10.0.0.1") {
		t.Fatal("second request denied within burst")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("third request allowed past burst")
	}

	// Other clients are unaffected
	if !rl.Allow("10.0.0.2") {
		t.Error("separate IP throttled")
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestWithThrottle_RejectsOverBurst(t *testing.T) {
	// no refill within the test: burst of 2, then 429
	limiter := rate.NewLimiter(rate.Limit(0.001), 2)
	h := WithThrottle(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("requests within burst must pass: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("request over burst must get 429, got %d", codes[2])
	}
}

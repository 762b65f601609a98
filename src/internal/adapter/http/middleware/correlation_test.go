package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID_KeepsCallerSuppliedID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	req.Header.Set(CorrelationIDHeader, "intent-7")

	rr := httptest.NewRecorder()
	CorrelationID()(next).ServeHTTP(rr, req)

	assert.Equal(t, "intent-7", seen)
	assert.Equal(t, "intent-7", rr.Header().Get(CorrelationIDHeader))
}

func TestCorrelationID_GeneratesWhenMissingOrOversized(t *testing.T) {
	for _, header := range []string{"", strings.Repeat("x", 200)} {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = CorrelationIDFrom(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(CorrelationIDHeader, header)
		}

		rr := httptest.NewRecorder()
		CorrelationID()(next).ServeHTTP(rr, req)

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rr.Header().Get(CorrelationIDHeader))
	}
}

func TestCorrelationIDFrom_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, CorrelationIDFrom(req.Context()))
}

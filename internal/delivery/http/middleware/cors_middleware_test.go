package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsServe(m *CORSMiddleware, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestCORSWildcardAllowsAnyOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec, reached := corsServe(m, req)

	assert.True(t, reached)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSReflectsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://clinic.example", "https://admin.clinic.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Origin", "https://clinic.example")

	rec, reached := corsServe(m, req)

	assert.True(t, reached)
	assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://clinic.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec, reached := corsServe(m, req)

	assert.True(t, reached)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	m := NewCORSMiddleware([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/api/doctors", nil)
	req.Header.Set("Origin", "https://clinic.example")

	rec, reached := corsServe(m, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

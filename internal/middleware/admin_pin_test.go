package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taktapp/planner/internal/middleware"
)

type staticPinSource struct {
	pin string
	err error
}

func (s staticPinSource) AdminPin(ctx context.Context) (string, error) {
	return s.pin, s.err
}

func gatedHandler(t *testing.T, source middleware.PinSource) (http.Handler, *bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.AdminPinMiddleware(source)(next), &reached
}

func TestAdminPinMiddleware_CorrectPin(t *testing.T) {
	handler, reached := gatedHandler(t, staticPinSource{pin: "1412"})

	req := httptest.NewRequest(http.MethodPost, "/api/band/advance", nil)
	req.Header.Set("X-Admin-Pin", "1412")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestAdminPinMiddleware_WrongPin(t *testing.T) {
	handler, reached := gatedHandler(t, staticPinSource{pin: "1412"})

	req := httptest.NewRequest(http.MethodPost, "/api/band/advance", nil)
	req.Header.Set("X-Admin-Pin", "0000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached, "handler must not run after a rejected PIN")
}

func TestAdminPinMiddleware_MissingPin(t *testing.T) {
	handler, reached := gatedHandler(t, staticPinSource{pin: "1412"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/queue", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)
}

func TestAdminPinMiddleware_RotatedPinTakesEffect(t *testing.T) {
	source := &staticPinSource{pin: "1412"}
	handler, _ := gatedHandler(t, source)

	req := httptest.NewRequest(http.MethodPost, "/api/queue", nil)
	req.Header.Set("X-Admin-Pin", "1412")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// the credential is loaded per request, so a rotation applies immediately
	source.pin = "2024"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req.Header.Set("X-Admin-Pin", "2024")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminPinMiddleware_SourceFailure(t *testing.T) {
	handler, reached := gatedHandler(t, staticPinSource{err: errors.New("store gone")})

	req := httptest.NewRequest(http.MethodPost, "/api/queue", nil)
	req.Header.Set("X-Admin-Pin", "1412")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, *reached)
}

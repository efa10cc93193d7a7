package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-wallet/internal/cache"
	"crypto-wallet/internal/database"
	"crypto-wallet/internal/market"
	"crypto-wallet/internal/service"
	"crypto-wallet/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDeps(t *testing.T) Deps {
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	cch := &cache.FakeCache{}
	return Deps{
		DB:       &database.FakeDB{},
		Cache:    cch,
		Limiter:  service.NewLoginLimiter(cch, 5, 15*time.Minute),
		Workers:  wp,
		Market:   market.NewClient("http://127.0.0.1:0", "", nil, 0),
		TokenTTL: time.Hour,
	}
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, newDeps(t))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /ping",
		http.MethodPost + " /auth/register",
		http.MethodPost + " /auth/login",
		http.MethodPost + " /auth/logout",
		http.MethodGet + " /users/me",
		http.MethodPut + " /users/me",
		http.MethodDelete + " /users/me",
		http.MethodGet + " /crypto/prices",
		http.MethodGet + " /crypto/price/:symbol",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Setup(e, newDeps(t))

	for _, r := range []struct{ method, path string }{
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/users/me"},
		{http.MethodPut, "/users/me"},
		{http.MethodDelete, "/users/me"},
	} {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
	}
}

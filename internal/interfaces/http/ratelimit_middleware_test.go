package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/contaflow-api/internal/interfaces/http"
)

// fakeCache contador en memoria compatible con cache.Client.
type fakeCache struct {
	counts map[string]int64
	err    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{counts: make(map[string]int64)}
}

func (f *fakeCache) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCache) Close() error { return nil }

func buildRateLimitApp(c *fakeCache) *fiber.App {
	app := fiber.New()
	app.Post("/auth/login", apphttp.RateLimitLogin(c), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRateLimitLogin_DentroDelLimite_DejaPasar(t *testing.T) {
	app := buildRateLimitApp(newFakeCache())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "intento %d dentro del límite", i+1)
	}
}

func TestRateLimitLogin_SextoIntento_Retorna429(t *testing.T) {
	app := buildRateLimitApp(newFakeCache())

	var last *http.Response
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		last = resp
	}
	assert.Equal(t, http.StatusTooManyRequests, last.StatusCode)
}

// Cada IP lleva su propio contador: agotar una no bloquea a las demás.
func TestRateLimitLogin_ContadorPorIP(t *testing.T) {
	cacheClient := newFakeCache()
	app := buildRateLimitApp(cacheClient)

	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"otra IP no debe verse afectada por el bloqueo de la primera")
}

// Si Redis falla, el login sigue funcionando (fail-open).
func TestRateLimitLogin_ErrorDeRedis_DejaPasar(t *testing.T) {
	cacheClient := newFakeCache()
	cacheClient.err = errors.New("connection refused")
	app := buildRateLimitApp(cacheClient)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un fallo del rate limiter nunca debe bloquear el login")
}

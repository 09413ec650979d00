package cmd

import (
	"io"
	"net/http/httptest"
	"testing"

	"cs2-localizer/core/loader"
	"cs2-localizer/core/middleware/auth"
	"cs2-localizer/core/server"
	"cs2-localizer/feature/translate"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, apiKey string) *fiber.App {
	t.Helper()
	logg := zap.NewNop()
	svc := translate.NewService(nil, afero.NewMemMapFs(), translate.Settings{}, nil, nil, logg)

	mgr := loader.NewManager(logg)
	mgr.Register(translate.NewFeature(svc))

	app, err := newServer(server.Config{Port: "0", ApiKey: apiKey, BodyLimitMB: 1}, logg, mgr)
	require.NoError(t, err)
	return app
}

func TestNewServer_SwaggerIsPublic(t *testing.T) {
	app := newTestServer(t, "secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"/translate/{category}"`)
	assert.Contains(t, string(body), `"/translate/categories"`)
	assert.Contains(t, string(body), `"/translate/history"`)
}

func TestNewServer_APIRequiresKey(t *testing.T) {
	app := newTestServer(t, "secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/translate/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/translate/categories", nil)
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package translate

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cs2-localizer/core/history"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, repo *history.Repository) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc, _ := newTestService(t, afero.NewMemMapFs(), repo)
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleTranslate(t *testing.T) {
	app := setupTestApp(t, nil)

	body := `[{"id":"sticker-1","name":"Sticker | Test"},{"name":"印花 | 已有"}]`
	req := httptest.NewRequest("POST", "/translate/stickers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get(HeaderTotal))
	assert.Equal(t, "1", resp.Header.Get(HeaderTranslated))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "测试", out[0]["name"])
	assert.Equal(t, "印花 | 已有", out[1]["name"])
}

func TestHandleTranslate_GloveFlag(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest("POST", "/translate/gloves?glove=true", strings.NewReader(`[{"paint_name":"AK-47 | Redline"}]`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(HeaderTranslated))
}

func TestHandleTranslate_Errors(t *testing.T) {
	app := setupTestApp(t, nil)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"UnknownCategory", "/translate/cases", `[]`, fiber.StatusNotFound},
		{"NotAnArray", "/translate/stickers", `{"name":"x"}`, fiber.StatusBadRequest},
		{"InvalidJSON", "/translate/stickers", `[{`, fiber.StatusBadRequest},
		{"DatasetUnavailable", "/translate/agents", `[]`, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHandleCategories(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/translate/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var infos []CategoryInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 5)
	assert.Equal(t, "skins", infos[3].Name)
	assert.Len(t, infos[3].Inputs, 2)
	assert.Contains(t, infos[3].Strategies, "reverse_name")
}

func TestHandleHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		app := setupTestApp(t, nil)
		resp, err := app.Test(httptest.NewRequest("GET", "/translate/history", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Enabled", func(t *testing.T) {
		app := setupTestApp(t, sqliteRepo(t))

		resp, err := app.Test(httptest.NewRequest("POST", "/translate/stickers", strings.NewReader(`[]`)))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/translate/history?category=sticker&limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var runs []history.Run
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
		require.Len(t, runs, 1)
		assert.Equal(t, "stickers", runs[0].Category)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		app := setupTestApp(t, sqliteRepo(t))
		resp, err := app.Test(httptest.NewRequest("GET", "/translate/history?category=cases", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

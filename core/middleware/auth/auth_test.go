package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-bridge/core/middleware/auth"
)

func testApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func get(t *testing.T, app *fiber.App, key string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if key != "" {
		req.Header.Set("X-Api-Key", key)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestValidKeyAccepted(t *testing.T) {
	app := testApp(auth.Config{ApiKey: "secret"})

	assert.Equal(t, http.StatusOK, get(t, app, "secret").StatusCode)
}

func TestInvalidKeyRejected(t *testing.T) {
	app := testApp(auth.Config{ApiKey: "secret"})

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "wrong").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "").StatusCode)
}

func TestEmptyKeyDisablesCheck(t *testing.T) {
	app := testApp(auth.Config{ApiKey: ""})

	assert.Equal(t, http.StatusOK, get(t, app, "").StatusCode)
}

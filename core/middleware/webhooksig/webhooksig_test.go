package webhooksig_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-bridge/core/middleware/webhooksig"
)

func testApp(cfg webhooksig.Config) *fiber.App {
	app := fiber.New()
	app.Use(webhooksig.New(cfg))
	app.Post("/hook", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body []byte, signature string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(webhooksig.HeaderName, signature)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestDisabledPassesThrough(t *testing.T) {
	app := testApp(webhooksig.Config{Secret: "secret", Enabled: false})

	res := post(t, app, []byte(`{}`), "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestValidSignatureAccepted(t *testing.T) {
	app := testApp(webhooksig.Config{Secret: "secret", Enabled: true})
	body := []byte(`{"event":"failure.closed"}`)

	res := post(t, app, body, webhooksig.Expected(body, "secret"))

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestInvalidSignatureRejected(t *testing.T) {
	app := testApp(webhooksig.Config{Secret: "secret", Enabled: true})
	body := []byte(`{"event":"failure.closed"}`)

	res := post(t, app, body, webhooksig.Expected(body, "wrong-secret"))

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestMissingSignatureRejected(t *testing.T) {
	app := testApp(webhooksig.Config{Secret: "secret", Enabled: true})

	res := post(t, app, []byte(`{}`), "")

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

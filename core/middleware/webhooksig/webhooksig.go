// Package webhooksig validates HMAC signatures on inbound webhooks.
//
// The sending platform signs the raw request body with a shared secret and
// puts "sha256=<hex digest>" in the X-Signature header. Verification is
// off by default; platforms that have signing disabled on their side keep
// working until the secret is rolled out on both ends.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the signature.
const HeaderName = "X-Signature"

// Config holds the settings for the webhook signature middleware.
type Config struct {
	// Secret is the shared signing secret.
	Secret string
	// Enabled turns verification on. When false the middleware passes
	// every request through.
	Enabled bool
}

// Expected computes the signature header value for a body.
func Expected(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// New returns a middleware that rejects requests whose body signature does
// not match the shared secret.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled {
			return c.Next()
		}
		want := Expected(c.Body(), cfg.Secret)
		got := c.Get(HeaderName)
		if !hmac.Equal([]byte(got), []byte(want)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "invalid signature",
			})
		}
		return c.Next()
	}
}

package server

// Config holds configuration for the trigger HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the trigger endpoints.
	ApiKey string `mapstructure:"api_key" default:""`
	// WebhookSecret is the shared secret for webhook signature checks.
	WebhookSecret string `mapstructure:"webhook_secret" default:""`
	// WebhookVerify enables webhook signature verification.
	// The upstream platform currently sends unsigned payloads, so this
	// stays off until the webhook subscription is re-keyed.
	WebhookVerify bool `mapstructure:"webhook_verify" default:"false"`
}

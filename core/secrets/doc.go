// Package secrets resolves platform API credentials at run time.
//
// Two sources exist: plain environment variables for local development,
// and a JSON document in AWS Secrets Manager for deployed environments.
// The AWS source caches the secret for the process lifetime.
package secrets

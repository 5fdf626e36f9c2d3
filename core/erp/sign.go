package erp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Signature computes the request signature: base64 of the HMAC-SHA256 of
// the URL parameter string under the API key. The platform signs only the
// query portion, which is empty for every endpoint currently used.
func Signature(urlParams, apiKey string) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(urlParams))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

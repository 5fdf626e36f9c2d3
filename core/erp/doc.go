// Package erp is the client for the inventory/ERP platform.
//
// The API exposes list endpoints as numbered path pages
// (Resource/Page/N) wrapped in an {Items, Pagination} envelope, and
// accepts writes as JSON POSTs. Every request is authenticated with an
// account id header plus an HMAC-SHA256 signature of the URL parameter
// string (empty for all current calls) under the account's API key.
package erp

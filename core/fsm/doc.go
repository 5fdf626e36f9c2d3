// Package fsm implements the client for the field-service platform's
// JSON:API style REST interface. Collections arrive as {data, links}
// envelopes paginated through links.next, resources carry their fields
// under attributes, and relationship expansions land in a flat included
// array. Authentication is a bearer token resolved through core/secrets.
package fsm

// Package fetch provides the shared paginated retrieval loop used by both
// platform clients.
//
// Both platforms expose list endpoints as numbered pages with a
// continuation indicator (a page count on one, a next link on the other).
// The All helper normalizes either shape into a flat slice by walking
// pages iteratively until the indicator is exhausted.
//
// # Error policy
//
// A single-page failure is logged and swallowed; the walk returns what it
// has. Jobs treat partial catalog data as acceptable rather than aborting
// an entire run over one bad page.
package fetch

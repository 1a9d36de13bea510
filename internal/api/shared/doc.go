// Package shared holds the pieces every HTTP stage depends on: the tagged
// HTTPError, the controller wrapper, the terminal error handler, JSON
// responses and request-context keys.
package shared

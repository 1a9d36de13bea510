// Package auth issues and verifies session tokens and handles password hashing.
//
// Session tokens are HMAC-SHA256 signed JWTs carrying the user ID. A token is
// only honored by the API while it is also stored on the user record, so
// logging out invalidates it before it expires.
package auth

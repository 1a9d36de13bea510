//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Tests using it are compiled only with the integration build tag and are
// skipped when no database URL is configured:
//
//	DATABASE_URL=postgres://... go test -tags=integration ./...
//
// Each test runs inside a transaction that is rolled back afterwards, so
// tests can run in parallel against one database without cleanup.
package testdb

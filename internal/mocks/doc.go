// Package mocks provides hand-written test doubles for the store, auth,
// mail and storage interfaces. The in-memory stores honor the same
// contracts as the PostgreSQL implementations, ownership scoping included,
// so they can back end-to-end router tests.
package mocks

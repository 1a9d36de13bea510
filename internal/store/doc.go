// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the HTTP layer, so handlers only ever see users, contacts and the
// sentinel errors declared here.
package store

// Package middleware contains the request stages that run before a
// controller: authentication, path-id checks, body validation, rate
// limiting and trace-id propagation. A stage either calls the next handler
// or forwards exactly one error to shared.HandleError.
package middleware

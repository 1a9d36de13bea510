// Package api provides the HTTP controllers of the contacts service.
//
// Controllers are shared.HandlerFunc values: they run after the middleware
// chain has authenticated the caller and validated the body, perform one
// persistence operation and either write the success response or return an
// error for shared.HandleError. They never validate input themselves.
package api

// Package schema validates JSON request bodies against request structs.
//
// A Schema mirrors an object schema that rejects unknown keys: every key of
// the body must be a field of the request struct, fields must carry the
// right JSON type, strings may not be empty, and the remaining rules come
// from go-playground/validator tags. The first failure is reported in the
// form clients of this API already parse, for example
//
//	"email" is required
//	"password" length must be at least 7 characters long
//	"subscription" must be one of [starter, pro, business]
//
// How a failure is turned into a response message is decided per endpoint by
// a Policy.
package schema

// Package domain defines the core entities of the contacts service, users and
// the contacts they own, together with the validation rules that every
// persisted entity must satisfy regardless of which transport created it.
package domain

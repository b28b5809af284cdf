// Package user defines the record kept by the user store and the predicates
// used to search for it.
package user

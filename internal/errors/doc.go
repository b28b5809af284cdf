// Package errors provides the structured domain errors returned by the user
// store. Every failure carries a machine-readable Code so callers can branch
// on the violated rule instead of matching message text.
package errors

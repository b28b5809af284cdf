// Package validation provides composable single-field rules for user
// records. Rules are applied in order and the first failure is returned as a
// typed domain error naming the offending field.
package validation

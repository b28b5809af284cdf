// Package storage provides the record container interface and its in-memory
// implementation. Records are kept as a set keyed by user ID.
package storage

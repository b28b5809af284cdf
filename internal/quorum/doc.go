// Package quorum provides coordination logic for fanning a write out to a
// list of replicas and deciding whether enough of them acknowledged it.
package quorum

// Package service implements the user storage service: a validated record
// set that, on a coordinating (master) node, mirrors every write to an
// ordered list of replicas and then notifies subscribers.
//
// A node's role is fixed when it is built. Replicas refuse writes issued
// directly by clients and only apply the ones forwarded by their master.
package service

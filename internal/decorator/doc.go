// Package decorator wraps a service.Service with cross-cutting behaviour.
// Decorators forward every call unchanged and can be stacked.
package decorator

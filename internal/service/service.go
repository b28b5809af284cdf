package service

import (
	"context"
	"iter"

	"userstore/internal/user"
)

// Role is the part a node plays in replication.
type Role int

const (
	// RoleMaster owns the write path and fans writes out to replicas.
	RoleMaster Role = iota
	// RoleReplica mirrors the writes forwarded by its master.
	RoleReplica
)

// String returns the role name used in logs.
func (r Role) String() string {
	switch r {
	case RoleMaster:
		return "master"
	case RoleReplica:
		return "replica"
	default:
		return "unknown"
	}
}

// Service is the client-facing user storage surface.
type Service interface {
	// Count returns the number of stored users.
	Count() int
	// Add validates and stores a user.
	Add(ctx context.Context, u user.User) error
	// Remove deletes a stored user.
	Remove(ctx context.Context, u user.User) error
	// Search returns the users matching pred.
	Search(ctx context.Context, pred user.Predicate) (iter.Seq[user.User], error)

	// Field searches validate their arguments before scanning.
	SearchByFirstName(ctx context.Context, firstName string) (iter.Seq[user.User], error)
	SearchByLastName(ctx context.Context, lastName string) (iter.Seq[user.User], error)
	SearchByAge(ctx context.Context, age int) (iter.Seq[user.User], error)
	SearchByFirstNameAndLastName(ctx context.Context, firstName, lastName string) (iter.Seq[user.User], error)
	SearchByFirstNameAndAge(ctx context.Context, firstName string, age int) (iter.Seq[user.User], error)
	SearchByLastNameAndAge(ctx context.Context, lastName string, age int) (iter.Seq[user.User], error)
	SearchByFirstNameAndLastNameAndAge(ctx context.Context, firstName, lastName string, age int) (iter.Seq[user.User], error)
}

// Subscriber is notified after a master applied and replicated a write.
// Subscribers are compared by identity, so register pointers.
type Subscriber interface {
	// UserAdded is called after an Add.
	UserAdded(ctx context.Context, u user.User)
	// UserRemoved is called after a Remove.
	UserRemoved(ctx context.Context, u user.User)
}

// SubscriberFuncs adapts plain functions to a Subscriber. Nil fields and a
// nil receiver are skipped.
type SubscriberFuncs struct {
	OnAdded   func(ctx context.Context, u user.User)
	OnRemoved func(ctx context.Context, u user.User)
}

// UserAdded calls OnAdded.
func (s *SubscriberFuncs) UserAdded(ctx context.Context, u user.User) {
	if s != nil && s.OnAdded != nil {
		s.OnAdded(ctx, u)
	}
}

// UserRemoved calls OnRemoved.
func (s *SubscriberFuncs) UserRemoved(ctx context.Context, u user.User) {
	if s != nil && s.OnRemoved != nil {
		s.OnRemoved(ctx, u)
	}
}

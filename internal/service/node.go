package service

import (
	"context"
	"fmt"
	"iter"
	"log"
	"reflect"
	"slices"

	apperrors "userstore/internal/errors"
	"userstore/internal/quorum"
	"userstore/internal/replication"
	"userstore/internal/storage"
	"userstore/internal/user"
	"userstore/internal/validation"
)

var (
	// ErrReplicaReadOnly indicates a client tried to write to a replica directly.
	ErrReplicaReadOnly = apperrors.New(apperrors.CodeReplicaReadOnly, "replica does not accept client writes")
	// ErrNotCoordinator indicates a master-only operation was called on a replica.
	ErrNotCoordinator = apperrors.New(apperrors.CodeNotCoordinator, "operation requires a master node")
	// ErrNilPredicate indicates Search was called without a predicate.
	ErrNilPredicate = apperrors.New(apperrors.CodePredicateNil, "predicate cannot be nil")
	// ErrNilSubscriber indicates a nil subscriber was registered or removed.
	ErrNilSubscriber = apperrors.New(apperrors.CodeSubscriberNil, "subscriber cannot be nil")
	// ErrSubscriberNotFound indicates the subscriber was never registered.
	ErrSubscriberNotFound = apperrors.New(apperrors.CodeSubscriberNotFound, "no such subscriber was found")
)

// Node is a user storage node, either a master or a replica.
type Node struct {
	id          string
	role        Role
	store       storage.Store
	validator   validation.Validator
	ages        validation.AgeRange
	logger      *log.Logger
	replicas    *replication.Set[*Node]
	writeQuorum int
	subscribers []Subscriber
}

// Option configures a Node.
type Option func(*Node)

// WithValidator replaces the default rule chain used on Add.
func WithValidator(v validation.Validator) Option {
	return func(n *Node) { n.validator = v }
}

// WithAgeRange sets the accepted age range for search arguments and, unless
// WithValidator is also given, for the default rule chain.
func WithAgeRange(r validation.AgeRange) Option {
	return func(n *Node) { n.ages = r }
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(n *Node) { n.logger = l }
}

// WithWriteQuorum sets how many replicas must apply a write on a master.
// Zero, the default, requires all of them.
func WithWriteQuorum(w int) Option {
	return func(n *Node) { n.writeQuorum = w }
}

// WithStore sets the record container. Defaults to a new in-memory store.
func WithStore(s storage.Store) Option {
	return func(n *Node) { n.store = s }
}

func newNode(id string, role Role, opts []Option) *Node {
	n := &Node{
		id:   id,
		role: role,
		ages: validation.DefaultAgeRange,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.store == nil {
		n.store = storage.NewInMemoryStore()
	}
	if n.validator == nil {
		n.validator = validation.New(n.ages)
	}
	if n.logger == nil {
		n.logger = log.Default()
	}
	return n
}

// NewReplica creates a replica node.
func NewReplica(id string, opts ...Option) *Node {
	return newNode(id, RoleReplica, opts)
}

// NewMaster creates a master node that mirrors writes to replicas in the
// given order. Every replica must have been built with NewReplica.
func NewMaster(id string, replicas []*Node, opts ...Option) (*Node, error) {
	n := newNode(id, RoleMaster, opts)

	entries := make([]replication.Replica[*Node], 0, len(replicas))
	for i, r := range replicas {
		if r == nil {
			return nil, apperrors.New(apperrors.CodeReplicaInvalid, fmt.Sprintf("replica %d is nil", i))
		}
		if r.role != RoleReplica {
			return nil, apperrors.WithMetadata(apperrors.CodeReplicaInvalid,
				fmt.Sprintf("node %s is not a replica", r.id), map[string]string{"id": r.id})
		}
		entries = append(entries, replication.Replica[*Node]{ID: r.id, Target: r})
	}

	set, err := replication.NewSet(entries...)
	if err != nil {
		return nil, err
	}
	if err := quorum.CheckW(n.writeQuorum, set.Len()); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeWriteQuorumInvalid, "invalid write quorum", err)
	}
	n.replicas = set

	return n, nil
}

// ID returns the node ID.
func (n *Node) ID() string { return n.id }

// Role returns the node role.
func (n *Node) Role() Role { return n.role }

// ReplicaIDs returns the replica IDs of a master in fan-out order.
func (n *Node) ReplicaIDs() []string {
	if n.replicas == nil {
		return nil
	}
	return n.replicas.IDs()
}

// Count returns the number of users stored on this node.
func (n *Node) Count() int {
	return n.store.Count()
}

// Contains reports whether a user with the given ID is stored on this node.
func (n *Node) Contains(id string) bool {
	return n.store.Contains(id)
}

// Add validates u and stores it. On a master the write is then forwarded to
// every replica and, once the write quorum is met, subscribers are notified
// in registration order. Replicas refuse client writes. A cancelled
// context fails the call before anything is stored.
func (n *Node) Add(ctx context.Context, u user.User) error {
	if n.role == RoleReplica {
		return n.readOnly(u)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.apply(u); err != nil {
		return err
	}

	result := quorum.DoWrite(ctx, n.replicas.IDs(), n.writeQuorum, func(ctx context.Context, rid string) error {
		r, _ := n.replicas.Get(rid)
		return r.apply(u)
	})
	if !result.Success {
		n.logger.Printf("[%s] Add replication failed: id=%s acks=%d/%d", n.id, u.ID, result.Acks, result.Required)
		return apperrors.Wrap(apperrors.CodeReplicationFailed, "replicate add", result.Err())
	}

	for _, sub := range n.subscribers {
		sub.UserAdded(ctx, u)
	}
	return nil
}

// Remove deletes u. Removing a user that is not stored fails without side
// effects. On a master the removal is forwarded and subscribers notified.
func (n *Node) Remove(ctx context.Context, u user.User) error {
	if n.role == RoleReplica {
		return n.readOnly(u)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.store.Remove(u); err != nil {
		return err
	}

	result := quorum.DoWrite(ctx, n.replicas.IDs(), n.writeQuorum, func(ctx context.Context, rid string) error {
		r, _ := n.replicas.Get(rid)
		return r.store.Remove(u)
	})
	if !result.Success {
		n.logger.Printf("[%s] Remove replication failed: id=%s acks=%d/%d", n.id, u.ID, result.Acks, result.Required)
		return apperrors.Wrap(apperrors.CodeReplicationFailed, "replicate remove", result.Err())
	}

	for _, sub := range n.subscribers {
		sub.UserRemoved(ctx, u)
	}
	return nil
}

// apply validates and stores u locally. It is the path forwarded writes take
// on a replica.
func (n *Node) apply(u user.User) error {
	if err := n.validator.Validate(u); err != nil {
		return err
	}
	return n.store.Add(u)
}

func (n *Node) readOnly(u user.User) error {
	n.logger.Printf("[%s] rejected client write: id=%s", n.id, u.ID)
	return apperrors.WithMetadata(ErrReplicaReadOnly.Code, ErrReplicaReadOnly.Message, map[string]string{"node": n.id})
}

// Search returns the users on this node matching pred. The scan runs lazily
// as the sequence is consumed.
func (n *Node) Search(ctx context.Context, pred user.Predicate) (iter.Seq[user.User], error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	return n.store.Search(pred), nil
}

// AddSubscriber registers sub for change notifications. Only masters notify.
func (n *Node) AddSubscriber(sub Subscriber) error {
	if n.role != RoleMaster {
		return ErrNotCoordinator
	}
	if isNil(sub) {
		return ErrNilSubscriber
	}
	n.subscribers = append(n.subscribers, sub)
	return nil
}

// RemoveSubscriber unregisters the first registration of sub.
func (n *Node) RemoveSubscriber(sub Subscriber) error {
	if n.role != RoleMaster {
		return ErrNotCoordinator
	}
	if isNil(sub) {
		return ErrNilSubscriber
	}
	for i, s := range n.subscribers {
		if s == sub {
			n.subscribers = slices.Delete(n.subscribers, i, i+1)
			return nil
		}
	}
	return ErrSubscriberNotFound
}

// isNil also catches typed nil pointers such as (*SubscriberFuncs)(nil).
func isNil(sub Subscriber) bool {
	if sub == nil {
		return true
	}
	v := reflect.ValueOf(sub)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// UserAdded lets a node subscribe to a master's notifications.
func (n *Node) UserAdded(ctx context.Context, u user.User) {
	n.logger.Printf("[%s] subscriber: user added id=%s", n.id, u.ID)
}

// UserRemoved lets a node subscribe to a master's notifications.
func (n *Node) UserRemoved(ctx context.Context, u user.User) {
	n.logger.Printf("[%s] subscriber: user removed id=%s", n.id, u.ID)
}

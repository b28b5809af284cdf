// Package replication keeps the ordered set of replicas a coordinating node
// mirrors its writes to.
package replication

import (
	"fmt"
	"strings"

	apperrors "userstore/internal/errors"
)

// Replica is a named replication target.
type Replica[T any] struct {
	ID     string
	Target T
}

// Set is an ordered list of uniquely named replicas.
type Set[T any] struct {
	replicas []Replica[T]
	index    map[string]int
}

// NewSet builds a set from replicas, keeping their order. IDs must be
// non-empty and unique.
func NewSet[T any](replicas ...Replica[T]) (*Set[T], error) {
	s := &Set[T]{
		replicas: make([]Replica[T], 0, len(replicas)),
		index:    make(map[string]int, len(replicas)),
	}
	for _, r := range replicas {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, apperrors.New(apperrors.CodeReplicaInvalid, "replica id cannot be empty")
		}
		if _, dup := s.index[id]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeReplicaInvalid,
				fmt.Sprintf("duplicate replica id: %s", id), map[string]string{"id": id})
		}
		s.index[id] = len(s.replicas)
		s.replicas = append(s.replicas, Replica[T]{ID: id, Target: r.Target})
	}
	return s, nil
}

// IDs returns the replica IDs in list order.
func (s *Set[T]) IDs() []string {
	ids := make([]string, len(s.replicas))
	for i, r := range s.replicas {
		ids[i] = r.ID
	}
	return ids
}

// Get returns the target registered under id.
func (s *Set[T]) Get(id string) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.replicas[i].Target, true
}

// Len returns the number of replicas.
func (s *Set[T]) Len() int {
	return len(s.replicas)
}

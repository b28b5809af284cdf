// Package cluster wires a master, its replicas and the service decorators
// into one in-process user store described by a config.Config.
package cluster

import (
	"fmt"
	"log"

	"go.opentelemetry.io/otel/trace"

	"userstore/internal/config"
	"userstore/internal/decorator"
	"userstore/internal/service"
)

// Cluster is a master with its replicas and the decorated client surface.
type Cluster struct {
	master   *service.Node
	replicas []*service.Node
	svc      service.Service
}

// NodeOptions returns extra options for the node with the given ID. They are
// applied after the ones derived from the config.
type NodeOptions func(nodeID string) []service.Option

// New builds the cluster described by cfg. A nil tracer provider uses the
// global one; nodeOpts may be nil.
func New(cfg config.Config, logger *log.Logger, tp trace.TracerProvider, nodeOpts NodeOptions) (*Cluster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	optsFor := func(nodeID string, base ...service.Option) []service.Option {
		opts := append(base,
			service.WithLogger(logger),
			service.WithAgeRange(cfg.AgeRange()),
		)
		if nodeOpts != nil {
			opts = append(opts, nodeOpts(nodeID)...)
		}
		return opts
	}

	replicaIDs := cfg.ReplicaIDs()
	replicas := make([]*service.Node, 0, len(replicaIDs))
	for _, id := range replicaIDs {
		replicas = append(replicas, service.NewReplica(id, optsFor(id)...))
	}

	master, err := service.NewMaster(cfg.NodeID, replicas, optsFor(cfg.NodeID, service.WithWriteQuorum(cfg.WriteQuorum))...)
	if err != nil {
		return nil, fmt.Errorf("create master: %w", err)
	}

	if cfg.SubscribeReplicas {
		for _, r := range replicas {
			if err := master.AddSubscriber(r); err != nil {
				return nil, fmt.Errorf("subscribe %s: %w", r.ID(), err)
			}
		}
	}

	var svc service.Service = decorator.NewTracing(master, tp)
	svc = decorator.NewLogging(svc, logger, cfg.NodeID, cfg.EnableLogging)

	return &Cluster{
		master:   master,
		replicas: replicas,
		svc:      svc,
	}, nil
}

// Service returns the decorated client surface of the master.
func (c *Cluster) Service() service.Service {
	return c.svc
}

// Master returns the undecorated master node.
func (c *Cluster) Master() *service.Node {
	return c.master
}

// Replicas returns the replicas in fan-out order.
func (c *Cluster) Replicas() []*service.Node {
	return append([]*service.Node(nil), c.replicas...)
}

// GetNode returns a node by ID, or nil.
func (c *Cluster) GetNode(nodeID string) *service.Node {
	if c.master.ID() == nodeID {
		return c.master
	}
	for _, r := range c.replicas {
		if r.ID() == nodeID {
			return r
		}
	}
	return nil
}

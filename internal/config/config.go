// Package config loads the user store settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"userstore/internal/quorum"
	"userstore/internal/validation"
)

// Config holds the node configuration.
type Config struct {
	NodeID            string `env:"USERSTORE_NODE_ID" envDefault:"master"`
	Replicas          string `env:"USERSTORE_REPLICAS" envDefault:"replica-1,replica-2"`
	WriteQuorum       int    `env:"USERSTORE_WRITE_QUORUM" envDefault:"0"`
	EnableLogging     bool   `env:"USERSTORE_ENABLE_LOGGING" envDefault:"true"`
	SubscribeReplicas bool   `env:"USERSTORE_SUBSCRIBE_REPLICAS" envDefault:"true"`
	MinAge            int    `env:"USERSTORE_MIN_AGE" envDefault:"3"`
	MaxAge            int    `env:"USERSTORE_MAX_AGE" envDefault:"120"`
	OTelEndpoint      string `env:"USERSTORE_OTEL_ENDPOINT"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings are consistent.
func (c Config) Validate() error {
	if strings.TrimSpace(c.NodeID) == "" {
		return fmt.Errorf("node id cannot be empty")
	}
	if c.MinAge > c.MaxAge {
		return fmt.Errorf("min age %d exceeds max age %d", c.MinAge, c.MaxAge)
	}

	replicas, err := ParseReplicas(c.Replicas)
	if err != nil {
		return err
	}
	for _, id := range replicas {
		if id == c.NodeID {
			return fmt.Errorf("replica id %s collides with node id", id)
		}
	}
	if err := quorum.CheckW(c.WriteQuorum, len(replicas)); err != nil {
		return fmt.Errorf("write quorum: %w", err)
	}
	return nil
}

// AgeRange returns the configured accepted age range.
func (c Config) AgeRange() validation.AgeRange {
	return validation.AgeRange{Min: c.MinAge, Max: c.MaxAge}
}

// ReplicaIDs returns the parsed replica names. Call after Validate.
func (c Config) ReplicaIDs() []string {
	ids, _ := ParseReplicas(c.Replicas)
	return ids
}

// ParseReplicas parses a comma-separated list of replica names:
// "replica-1,replica-2,replica-3"
func ParseReplicas(replicasStr string) ([]string, error) {
	if replicasStr == "" {
		return []string{}, nil
	}

	parts := strings.Split(replicasStr, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if strings.ContainsAny(id, " \t=") {
			return nil, fmt.Errorf("invalid replica name: %q", id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("duplicate replica name: %s", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

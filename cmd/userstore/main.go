// Command userstore runs a sample session against an in-process master with
// its replicas: it adds a user, searches for it and removes it again.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"google.golang.org/grpc/status"

	"userstore/internal/cluster"
	"userstore/internal/config"
	apperrors "userstore/internal/errors"
	"userstore/internal/telemetry"
	"userstore/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "userstore", cfg.OTelEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up telemetry: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	runErr := run(ctx, cfg, logger)

	if err := shutdown(ctx); err != nil {
		logger.Printf("Telemetry shutdown: %v", err)
	}
	if runErr != nil {
		logger.Print(exitMessage(runErr))
		os.Exit(1)
	}
}

// exitMessage renders the diagnostic printed before a non-zero exit, with the
// gRPC code a client would have received.
func exitMessage(err error) string {
	st := status.Convert(apperrors.ToGRPC(err))
	return fmt.Sprintf("userstore: %v (code=%s)", err, st.Code())
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	c, err := cluster.New(cfg, logger, nil, nil)
	if err != nil {
		return err
	}
	svc := c.Service()

	alex := user.New("Alex", "Black", 25)
	if err := svc.Add(ctx, alex); err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	found, err := svc.SearchByFirstNameAndLastName(ctx, "Alex", "Black")
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	for u := range found {
		logger.Printf("[%s] found %s", cfg.NodeID, u)
	}
	logger.Printf("[%s] %d user(s) stored, replicas=%v", cfg.NodeID, svc.Count(), c.Master().ReplicaIDs())

	if err := svc.Remove(ctx, alex); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

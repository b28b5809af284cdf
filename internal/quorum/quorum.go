package quorum

import (
	"context"
	"errors"
	"fmt"
)

// WriteResult represents the result of a fan-out write.
type WriteResult struct {
	Success      bool
	Acks         int
	Required     int
	Replicas     int
	Errors       []error
	ErrorMessage string
}

// Err returns nil on success, otherwise an error joining every per-replica
// failure.
func (r WriteResult) Err() error {
	if r.Success {
		return nil
	}
	return errors.Join(append([]error{errors.New(r.ErrorMessage)}, r.Errors...)...)
}

// ReplicaWriteFunc performs a write to a single replica.
type ReplicaWriteFunc func(ctx context.Context, replicaID string) error

// CheckW reports whether requiredW can be met by replicas. Zero means all
// replicas; negative values are invalid.
func CheckW(requiredW, replicas int) error {
	if requiredW < 0 {
		return fmt.Errorf("required W=%d is negative", requiredW)
	}
	if requiredW > replicas {
		return fmt.Errorf("required W=%d exceeds replica count=%d", requiredW, replicas)
	}
	return nil
}

// DoWrite fans a write out to replicas one at a time, in list order. Every
// replica is attempted even after a failure; the write succeeds when at
// least requiredW replicas acknowledged it. requiredW <= 0 requires all of
// them. With no replicas the write trivially succeeds.
func DoWrite(ctx context.Context, replicas []string, requiredW int, writeFn ReplicaWriteFunc) WriteResult {
	if requiredW <= 0 {
		requiredW = len(replicas)
	}

	if err := CheckW(requiredW, len(replicas)); err != nil {
		return WriteResult{
			Success:      false,
			Required:     requiredW,
			Replicas:     len(replicas),
			ErrorMessage: err.Error(),
		}
	}

	var (
		acks int
		errs []error
	)

	for _, rid := range replicas {
		if err := ctx.Err(); err != nil {
			return WriteResult{
				Success:      false,
				Acks:         acks,
				Required:     requiredW,
				Replicas:     len(replicas),
				Errors:       append(errs, err),
				ErrorMessage: fmt.Sprintf("context cancelled: %v", err),
			}
		}

		if err := writeFn(ctx, rid); err != nil {
			errs = append(errs, fmt.Errorf("replica %s: %w", rid, err))
			continue
		}
		acks++
	}

	if acks >= requiredW {
		return WriteResult{
			Success:  true,
			Acks:     acks,
			Required: requiredW,
			Replicas: len(replicas),
			Errors:   errs,
		}
	}

	return WriteResult{
		Success:      false,
		Acks:         acks,
		Required:     requiredW,
		Replicas:     len(replicas),
		Errors:       errs,
		ErrorMessage: fmt.Sprintf("quorum not met: acks=%d required=%d replicas=%d", acks, requiredW, len(replicas)),
	}
}

package quorum

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// TestQuorum_WriteSuccessIffAcksGEQ_W tests that write succeeds iff acks >= W
func TestQuorum_WriteSuccessIffAcksGEQ_W(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.IntRange(1, 8).Draw(rt, "total")
		w := rapid.IntRange(1, total).Draw(rt, "w")
		failing := rapid.SliceOfN(rapid.Bool(), total, total).Draw(rt, "failing")

		replicas := make([]string, total)
		expectedAcks := 0
		for i := range replicas {
			replicas[i] = fmt.Sprintf("replica%d", i)
			if !failing[i] {
				expectedAcks++
			}
		}

		writeFn := func(ctx context.Context, replicaID string) error {
			for i, r := range replicas {
				if r == replicaID && failing[i] {
					return errors.New("simulated failure")
				}
			}
			return nil
		}

		result := DoWrite(context.Background(), replicas, w, writeFn)

		if result.Acks != expectedAcks {
			rt.Fatalf("Expected %d acks, got %d", expectedAcks, result.Acks)
		}
		if result.Success != (expectedAcks >= w) {
			rt.Fatalf("Expected success=%v, got %v (acks=%d, W=%d)",
				expectedAcks >= w, result.Success, expectedAcks, w)
		}
		if len(result.Errors) != total-expectedAcks {
			rt.Fatalf("Expected %d errors, got %d", total-expectedAcks, len(result.Errors))
		}
	})
}

package quorum

import (
	"context"
	"errors"
	"testing"
)

func TestDoWrite_Success(t *testing.T) {
	replicas := []string{"r1", "r2", "r3"}

	writeFn := func(ctx context.Context, replicaID string) error {
		return nil
	}

	result := DoWrite(context.Background(), replicas, 0, writeFn)

	if !result.Success {
		t.Errorf("Expected success, got: %v", result.ErrorMessage)
	}
	if result.Acks != 3 || result.Required != 3 {
		t.Errorf("Expected 3/3 acks, got %d/%d", result.Acks, result.Required)
	}
	if result.Err() != nil {
		t.Errorf("Expected nil Err(), got %v", result.Err())
	}
}

func TestDoWrite_CallsReplicasInOrder(t *testing.T) {
	replicas := []string{"r1", "r2", "r3"}

	var calls []string
	writeFn := func(ctx context.Context, replicaID string) error {
		calls = append(calls, replicaID)
		return nil
	}

	DoWrite(context.Background(), replicas, 0, writeFn)

	if len(calls) != 3 || calls[0] != "r1" || calls[1] != "r2" || calls[2] != "r3" {
		t.Errorf("Expected calls in list order, got %v", calls)
	}
}

func TestDoWrite_QuorumNotMet(t *testing.T) {
	replicas := []string{"r1", "r2", "r3"}
	failure := errors.New("replica failed")

	var calls int
	writeFn := func(ctx context.Context, replicaID string) error {
		calls++
		if replicaID == "r2" {
			return failure
		}
		return nil
	}

	result := DoWrite(context.Background(), replicas, 0, writeFn)

	if result.Success {
		t.Error("Expected failure, got success")
	}
	if calls != 3 {
		t.Errorf("Expected every replica to be attempted, got %d calls", calls)
	}
	if result.Acks != 2 {
		t.Errorf("Expected 2 acks, got %d", result.Acks)
	}
	if !errors.Is(result.Err(), failure) {
		t.Errorf("Expected Err() to wrap the replica failure, got %v", result.Err())
	}
}

func TestDoWrite_PartialQuorum(t *testing.T) {
	replicas := []string{"r1", "r2", "r3"}

	writeFn := func(ctx context.Context, replicaID string) error {
		if replicaID == "r3" {
			return errors.New("replica failed")
		}
		return nil
	}

	result := DoWrite(context.Background(), replicas, 2, writeFn)

	if !result.Success {
		t.Errorf("Expected success with W=2, got: %v", result.ErrorMessage)
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected the failed replica to be reported, got %v", result.Errors)
	}
}

func TestDoWrite_NoReplicas(t *testing.T) {
	called := false
	result := DoWrite(context.Background(), nil, 0, func(ctx context.Context, replicaID string) error {
		called = true
		return nil
	})

	if !result.Success {
		t.Errorf("Expected trivial success, got: %v", result.ErrorMessage)
	}
	if called {
		t.Error("Expected no writes")
	}
}

func TestDoWrite_InvalidW(t *testing.T) {
	replicas := []string{"r1", "r2"}

	result := DoWrite(context.Background(), replicas, 5, func(ctx context.Context, replicaID string) error {
		return nil
	})

	if result.Success {
		t.Error("Expected failure with W > replicas")
	}
	if result.ErrorMessage == "" {
		t.Error("Expected error message")
	}
}

func TestDoWrite_ContextCancelled(t *testing.T) {
	replicas := []string{"r1", "r2", "r3"}
	ctx, cancel := context.WithCancel(context.Background())

	var calls []string
	writeFn := func(ctx context.Context, replicaID string) error {
		calls = append(calls, replicaID)
		if replicaID == "r1" {
			cancel()
		}
		return nil
	}

	result := DoWrite(ctx, replicas, 0, writeFn)

	if result.Success {
		t.Error("Expected failure after cancellation")
	}
	if len(calls) != 1 {
		t.Errorf("Expected the loop to stop after r1, got %v", calls)
	}
	if result.Acks != 1 {
		t.Errorf("Expected 1 ack before cancellation, got %d", result.Acks)
	}
}

func TestDoWrite_ContextCancelledErr(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := DoWrite(ctx, []string{"r1"}, 0, func(ctx context.Context, replicaID string) error {
		return nil
	})

	if !errors.Is(result.Err(), context.Canceled) {
		t.Errorf("Expected Err() to wrap context.Canceled, got %v", result.Err())
	}
}

func TestCheckW(t *testing.T) {
	tests := []struct {
		requiredW int
		replicas  int
		wantErr   bool
	}{
		{0, 0, false},
		{0, 3, false},
		{2, 3, false},
		{3, 3, false},
		{4, 3, true},
		{1, 0, true},
		{-1, 3, true},
	}

	for _, tt := range tests {
		err := CheckW(tt.requiredW, tt.replicas)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckW(%d, %d) = %v, wantErr %v", tt.requiredW, tt.replicas, err, tt.wantErr)
		}
	}
}

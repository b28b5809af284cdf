package replication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "userstore/internal/errors"
)

func TestNewSet_KeepsOrder(t *testing.T) {
	s, err := NewSet(
		Replica[int]{ID: "r2", Target: 2},
		Replica[int]{ID: " r1 ", Target: 1},
		Replica[int]{ID: "r3", Target: 3},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"r2", "r1", "r3"}, s.IDs())
	assert.Equal(t, 3, s.Len())

	got, ok := s.Get("r1")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestNewSet_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		replicas []Replica[int]
	}{
		{"empty id", []Replica[int]{{ID: "  "}}},
		{"duplicate id", []Replica[int]{{ID: "r1"}, {ID: "r1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.replicas...)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeReplicaInvalid), "got %v", err)
		})
	}
}

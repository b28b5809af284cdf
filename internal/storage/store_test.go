package storage

import (
	"errors"
	"slices"
	"testing"

	apperrors "userstore/internal/errors"
	"userstore/internal/user"
)

func TestInMemoryStore_AddContains(t *testing.T) {
	store := NewInMemoryStore()
	u := user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25}

	if err := store.Add(u); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !store.Contains("u1") {
		t.Error("Expected store to contain u1")
	}
	if store.Count() != 1 {
		t.Errorf("Expected count 1, got %d", store.Count())
	}
}

func TestInMemoryStore_AddDuplicate(t *testing.T) {
	store := NewInMemoryStore()
	u := user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25}

	if err := store.Add(u); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	renamed := u
	renamed.FirstName = "Sam"
	err := store.Add(renamed)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Expected ErrAlreadyExists, got %v", err)
	}
	if apperrors.GetMetadata(err)["id"] != "u1" {
		t.Errorf("Expected id metadata u1, got %v", apperrors.GetMetadata(err))
	}

	// Original record is untouched
	got := slices.Collect(store.Search(user.ByFirstName("Alex")))
	if len(got) != 1 {
		t.Errorf("Expected original record to remain, got %v", got)
	}
}

func TestInMemoryStore_Remove(t *testing.T) {
	store := NewInMemoryStore()
	u := user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25}
	_ = store.Add(u)

	// Identity is the ID; other fields don't matter
	if err := store.Remove(user.User{ID: "u1"}); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Contains("u1") {
		t.Error("Expected u1 to be removed")
	}
}

func TestInMemoryStore_RemoveNotFound(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Add(user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25})

	err := store.Remove(user.User{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if store.Count() != 1 {
		t.Errorf("Expected count to stay 1, got %d", store.Count())
	}
}

func TestInMemoryStore_Search(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Add(user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25})
	_ = store.Add(user.User{ID: "u2", FirstName: "Jane", LastName: "Black", Age: 31})
	_ = store.Add(user.User{ID: "u3", FirstName: "Alex", LastName: "White", Age: 40})

	got := slices.Collect(store.Search(user.ByLastName("Black")))
	if len(got) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(got))
	}

	all := slices.Collect(store.Search(nil))
	if len(all) != 3 {
		t.Errorf("Expected nil predicate to match all 3, got %d", len(all))
	}
}

func TestInMemoryStore_SearchIsLazy(t *testing.T) {
	store := NewInMemoryStore()
	_ = store.Add(user.User{ID: "u1", FirstName: "Alex", LastName: "Black", Age: 25})
	_ = store.Add(user.User{ID: "u2", FirstName: "Jane", LastName: "Black", Age: 31})

	calls := 0
	seq := store.Search(func(user.User) bool {
		calls++
		return true
	})
	if calls != 0 {
		t.Fatalf("Expected no predicate calls before iteration, got %d", calls)
	}

	for range seq {
		break
	}
	if calls != 1 {
		t.Errorf("Expected iteration to stop after first match, got %d calls", calls)
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			_ = store.Add(user.User{ID: string(rune('a' + i)), FirstName: "F", LastName: "L", Age: 30})
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	if store.Count() != 10 {
		t.Errorf("Expected 10 records after concurrent adds, got %d", store.Count())
	}
}

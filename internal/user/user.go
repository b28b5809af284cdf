package user

import (
	"fmt"

	"github.com/google/uuid"
)

// User is a stored record. Two users are the same record when their IDs match.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Age       int
}

// New creates a user with a freshly generated ID.
func New(firstName, lastName string, age int) User {
	u, _ := NewWithID(firstName, lastName, age, nil)
	return u
}

// NewWithID creates a user whose ID comes from idGenerator. A nil generator
// falls back to random UUIDs.
func NewWithID(firstName, lastName string, age int, idGenerator func() (string, error)) (User, error) {
	if idGenerator == nil {
		idGenerator = NewID
	}

	id, err := idGenerator()
	if err != nil {
		return User{}, fmt.Errorf("generate user id: %w", err)
	}

	return User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}, nil
}

// NewID returns a random version 4 UUID string.
func NewID() (string, error) {
	return uuid.NewString(), nil
}

// String renders the user for log lines.
func (u User) String() string {
	return fmt.Sprintf("%s %s (age=%d, id=%s)", u.FirstName, u.LastName, u.Age, u.ID)
}

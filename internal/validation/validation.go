package validation

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "userstore/internal/errors"
	"userstore/internal/user"
)

// AgeRange is an inclusive range of accepted ages.
type AgeRange struct {
	Min int
	Max int
}

// DefaultAgeRange is the accepted age range unless configured otherwise.
var DefaultAgeRange = AgeRange{Min: 3, Max: 120}

// Contains reports whether age falls within the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Validator checks a user record.
type Validator interface {
	Validate(u user.User) error
}

// Func adapts a plain function to a Validator.
type Func func(u user.User) error

// Validate calls f.
func (f Func) Validate(u user.User) error {
	return f(u)
}

// ID rejects records without an identifier.
func ID() Validator {
	return Func(func(u user.User) error {
		if strings.TrimSpace(u.ID) == "" {
			return apperrors.New(apperrors.CodeUserIDEmpty, "id is required")
		}
		return nil
	})
}

// FirstName rejects empty or whitespace-only first names.
func FirstName() Validator {
	return Func(func(u user.User) error { return CheckFirstName(u.FirstName) })
}

// LastName rejects empty or whitespace-only last names.
func LastName() Validator {
	return Func(func(u user.User) error { return CheckLastName(u.LastName) })
}

// Age rejects ages outside r.
func Age(r AgeRange) Validator {
	return Func(func(u user.User) error { return CheckAge(r, u.Age) })
}

// CheckFirstName validates a first name on its own, e.g. a search argument.
func CheckFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return apperrors.New(apperrors.CodeUserFirstNameEmpty, "first name is required")
	}
	return nil
}

// CheckLastName validates a last name on its own.
func CheckLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return apperrors.New(apperrors.CodeUserLastNameEmpty, "last name is required")
	}
	return nil
}

// CheckAge validates an age against r.
func CheckAge(r AgeRange, age int) error {
	if !r.Contains(age) {
		return apperrors.WithMetadata(
			apperrors.CodeUserAgeOutOfRange,
			fmt.Sprintf("age %d outside [%d,%d]", age, r.Min, r.Max),
			map[string]string{
				"age": strconv.Itoa(age),
				"min": strconv.Itoa(r.Min),
				"max": strconv.Itoa(r.Max),
			},
		)
	}
	return nil
}

type composite []Validator

// Composite applies validators in order and stops at the first failure.
func Composite(validators ...Validator) Validator {
	return composite(append([]Validator(nil), validators...))
}

func (c composite) Validate(u user.User) error {
	for _, v := range c {
		if err := v.Validate(u); err != nil {
			return err
		}
	}
	return nil
}

// New returns the standard rule chain with a custom age range.
func New(r AgeRange) Validator {
	return Composite(ID(), FirstName(), LastName(), Age(r))
}

// Default returns the standard rule chain: id, first name, last name, age.
func Default() Validator {
	return New(DefaultAgeRange)
}
